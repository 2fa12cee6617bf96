package site

import (
	"fmt"
)

// NavigationError 必经UI步骤失败,该会话的整次搜索作废
type NavigationError struct {
	Site  string
	Step  StepKind
	Cause error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("站点 %s 导航步骤 %s 失败: %v", e.Site, e.Step, e.Cause)
}

func (e *NavigationError) Unwrap() error {
	return e.Cause
}

// PaginationStall 翻页无法确认完成,遍历截断并返回已收集的部分结果
type PaginationStall struct {
	PageIndex int
	Cause     error
}

func (e *PaginationStall) Error() string {
	return fmt.Sprintf("第 %d 页后翻页停滞: %v", e.PageIndex, e.Cause)
}

func (e *PaginationStall) Unwrap() error {
	return e.Cause
}

// ExtractionWarning 单张卡片解析失败,跳过该卡片并继续
type ExtractionWarning struct {
	CardIndex int
	Cause     error
}

func (e *ExtractionWarning) Error() string {
	return fmt.Sprintf("第 %d 张卡片提取失败: %v", e.CardIndex, e.Cause)
}

func (e *ExtractionWarning) Unwrap() error {
	return e.Cause
}

// InputValidationError 搜索条件缺失,在接触浏览器之前短路
type InputValidationError struct {
	Field string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("搜索条件缺失: %s", e.Field)
}
