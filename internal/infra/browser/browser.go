package browser

import (
	"errors"
	"strings"
	"time"
)

// ErrStaleTimeout 等待元素失效超时
var ErrStaleTimeout = errors.New("元素在等待预算内未失效")

// Element 页面中一个已渲染元素的句柄
// 页面内容被替换后句柄失效,此后的操作返回错误
type Element interface {
	Text() (string, error)
	Query(selector string) (Element, error)
	QueryAll(selector string) ([]Element, error)
	Click() error
}

// Session 一次受控浏览器会话
// 所有Wait*操作都带有限时预算,超时返回错误而不是阻塞
type Session interface {
	Navigate(url string) error
	WaitUntilPresent(selector string, timeout time.Duration) error
	WaitUntilClickable(selector string, timeout time.Duration) error
	WaitUntilStale(el Element, timeout time.Duration) error
	Click(selector string) error
	Type(selector string, text string) error
	QueryAll(selector string) ([]Element, error)
	CurrentURL() string
	Close()
}

// 以 // 或 ( 开头的选择器按XPath处理,其余按CSS处理
func isXPath(selector string) bool {
	return strings.HasPrefix(selector, "//") || strings.HasPrefix(selector, "(")
}
