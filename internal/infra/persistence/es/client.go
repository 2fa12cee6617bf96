package es

import (
	"context"

	"github.com/LouYuanbo1/directorycrawler/internal/domain/model"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

// TypedEsClient 泛型ES客户端,文档类型必须实现model.Document
type TypedEsClient[D model.Document] interface {
	GetClient() *elasticsearch.TypedClient
	CreateIndexWithMapping(ctx context.Context) error
	DeleteIndex(ctx context.Context) error
	IndexDocWithID(ctx context.Context, doc D) error
	BulkIndexDocsWithID(ctx context.Context, docs []D) error
	CountDocs(ctx context.Context) (int64, error)
	SearchDoc(ctx context.Context, query *types.Query, from, size int) ([]D, int64, error)
}
