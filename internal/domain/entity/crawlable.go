package entity

import (
	"github.com/LouYuanbo1/directorycrawler/internal/domain/model"
)

// 使用泛型定义可入库的实体接口,D是文档类型,必须实现model.Document接口
type Crawlable[D model.Document] interface {
	*ProviderRecord
	ToDocument() D
}
