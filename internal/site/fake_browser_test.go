package site

import (
	"fmt"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
)

// fakeElement 测试用内存元素,children/lists按选择器模拟子查询
type fakeElement struct {
	text     string
	textErr  error
	children map[string]browser.Element
	lists    map[string][]browser.Element
	clicks   int
}

func (e *fakeElement) Text() (string, error) {
	return e.text, e.textErr
}

func (e *fakeElement) Query(selector string) (browser.Element, error) {
	if child, ok := e.children[selector]; ok {
		return child, nil
	}
	return nil, fmt.Errorf("未找到元素: %s", selector)
}

func (e *fakeElement) QueryAll(selector string) ([]browser.Element, error) {
	return e.lists[selector], nil
}

func (e *fakeElement) Click() error {
	e.clicks++
	return nil
}

// fakeSession 测试用内存会话
// pages非空时cardSelector的QueryAll按当前页返回,点击nextSelector翻页
type fakeSession struct {
	failPresent   map[string]bool
	failClickable map[string]bool
	lists         map[string][]browser.Element
	typed         map[string]string
	clicked       []string
	navigated     []string
	url           string

	cardSelector string
	nextSelector string
	pages        [][]browser.Element
	pageIdx      int
	staleErr     error
	closed       bool
}

func (s *fakeSession) Navigate(url string) error {
	s.navigated = append(s.navigated, url)
	s.url = url
	return nil
}

func (s *fakeSession) WaitUntilPresent(selector string, timeout time.Duration) error {
	if s.failPresent[selector] {
		return fmt.Errorf("等待元素出现超时: %s", selector)
	}
	return nil
}

func (s *fakeSession) WaitUntilClickable(selector string, timeout time.Duration) error {
	if s.failClickable[selector] {
		return fmt.Errorf("等待元素可点击超时: %s", selector)
	}
	return nil
}

func (s *fakeSession) WaitUntilStale(el browser.Element, timeout time.Duration) error {
	return s.staleErr
}

func (s *fakeSession) Click(selector string) error {
	s.clicked = append(s.clicked, selector)
	if selector == s.nextSelector {
		s.pageIdx++
	}
	return nil
}

func (s *fakeSession) Type(selector string, text string) error {
	if s.typed == nil {
		s.typed = make(map[string]string)
	}
	s.typed[selector] = text
	return nil
}

func (s *fakeSession) QueryAll(selector string) ([]browser.Element, error) {
	if selector == s.cardSelector && s.pages != nil {
		if s.pageIdx < len(s.pages) {
			return s.pages[s.pageIdx], nil
		}
		return nil, nil
	}
	return s.lists[selector], nil
}

func (s *fakeSession) CurrentURL() string {
	return s.url
}

func (s *fakeSession) Close() {
	s.closed = true
}
