package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

type chromedpSession struct {
	allocCtx      context.Context
	allocCtxFuc   context.CancelFunc
	pageCtx       context.Context
	pageCtxFuc    context.CancelFunc
	timeoutCtxFuc context.CancelFunc
}

func InitChromedpSession(ctx context.Context, cfg *config.Config) Session {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Chromedp.Headless),
		chromedp.Flag("disable-blink-features", cfg.Chromedp.DisableBlinkFeatures),
		chromedp.Flag("incognito", cfg.Chromedp.Incognito),
		chromedp.Flag("disable-dev-shm-usage", cfg.Chromedp.DisableDevShmUsage),
		chromedp.Flag("no-sandbox", cfg.Chromedp.NoSandbox),
		chromedp.UserDataDir(cfg.Chromedp.UserDataDir),
		chromedp.UserAgent(cfg.Chromedp.UserAgent),
	)
	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, time.Duration(cfg.Chromedp.LifeTime)*time.Second)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, opts...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)

	return &chromedpSession{
		allocCtx:      allocCtx,
		allocCtxFuc:   cancelAlloc,
		pageCtx:       pageCtx,
		pageCtxFuc:    cancelPage,
		timeoutCtxFuc: cancelTimeout,
	}
}

func (cs *chromedpSession) Close() {
	cs.pageCtxFuc()
	cs.allocCtxFuc()
	cs.timeoutCtxFuc()
}

func queryOption(selector string) chromedp.QueryOption {
	if isXPath(selector) {
		return chromedp.BySearch
	}
	return chromedp.ByQuery
}

func (cs *chromedpSession) Navigate(url string) error {
	return chromedp.Run(cs.pageCtx,
		network.Enable(),
		chromedp.Navigate(url),
	)
}

func (cs *chromedpSession) WaitUntilPresent(selector string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(cs.pageCtx, timeout)
	defer cancel()
	if err := chromedp.Run(ctx, chromedp.WaitReady(selector, queryOption(selector))); err != nil {
		return fmt.Errorf("等待元素出现超时 %s: %w", selector, err)
	}
	return nil
}

func (cs *chromedpSession) WaitUntilClickable(selector string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(cs.pageCtx, timeout)
	defer cancel()
	err := chromedp.Run(ctx,
		chromedp.WaitVisible(selector, queryOption(selector)),
		chromedp.WaitEnabled(selector, queryOption(selector)),
	)
	if err != nil {
		return fmt.Errorf("元素不可点击 %s: %w", selector, err)
	}
	return nil
}

// WaitUntilStale 轮询节点描述,节点从DOM移除后DescribeNode返回错误
func (cs *chromedpSession) WaitUntilStale(el Element, timeout time.Duration) error {
	ce, ok := el.(*chromedpElement)
	if !ok {
		return fmt.Errorf("未知的元素句柄类型: %T", el)
	}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		probe := chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := dom.DescribeNode().WithBackendNodeID(ce.node.BackendNodeID).Do(ctx)
			return err
		})
		if err := chromedp.Run(cs.pageCtx, probe); err != nil {
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return ErrStaleTimeout
}

func (cs *chromedpSession) Click(selector string) error {
	ctx, cancel := context.WithTimeout(cs.pageCtx, 3*time.Second)
	defer cancel()
	if err := chromedp.Run(ctx, chromedp.Click(selector, queryOption(selector))); err != nil {
		return fmt.Errorf("点击失败 %s: %w", selector, err)
	}
	return nil
}

func (cs *chromedpSession) Type(selector string, text string) error {
	ctx, cancel := context.WithTimeout(cs.pageCtx, 3*time.Second)
	defer cancel()
	err := chromedp.Run(ctx,
		chromedp.Clear(selector, queryOption(selector)),
		chromedp.SendKeys(selector, text, queryOption(selector)),
	)
	if err != nil {
		return fmt.Errorf("输入失败 %s: %w", selector, err)
	}
	return nil
}

func (cs *chromedpSession) QueryAll(selector string) ([]Element, error) {
	ctx, cancel := context.WithTimeout(cs.pageCtx, 3*time.Second)
	defer cancel()
	var nodes []*cdp.Node
	opt := chromedp.ByQueryAll
	if isXPath(selector) {
		opt = chromedp.BySearch
	}
	if err := chromedp.Run(ctx, chromedp.Nodes(selector, &nodes, opt, chromedp.AtLeast(0))); err != nil {
		return nil, fmt.Errorf("查询元素失败 %s: %w", selector, err)
	}
	handles := make([]Element, 0, len(nodes))
	for _, node := range nodes {
		handles = append(handles, &chromedpElement{pageCtx: cs.pageCtx, node: node})
	}
	return handles, nil
}

func (cs *chromedpSession) CurrentURL() string {
	ctx, cancel := context.WithTimeout(cs.pageCtx, 3*time.Second)
	defer cancel()
	var url string
	if err := chromedp.Run(ctx, chromedp.Location(&url)); err != nil {
		return ""
	}
	return url
}

type chromedpElement struct {
	pageCtx context.Context
	node    *cdp.Node
}

func (ce *chromedpElement) Text() (string, error) {
	ctx, cancel := context.WithTimeout(ce.pageCtx, 3*time.Second)
	defer cancel()
	var text string
	action := chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := dom.ResolveNode().WithBackendNodeID(ce.node.BackendNodeID).Do(ctx)
		if err != nil {
			return err
		}
		res, exp, err := runtime.CallFunctionOn(`function() { return this.innerText; }`).
			WithObjectID(obj.ObjectID).
			WithReturnByValue(true).
			Do(ctx)
		if err != nil {
			return err
		}
		if exp != nil {
			return exp
		}
		if res != nil && res.Value != nil {
			return json.Unmarshal(res.Value, &text)
		}
		return nil
	})
	if err := chromedp.Run(ctx, action); err != nil {
		return "", err
	}
	return text, nil
}

func (ce *chromedpElement) Query(selector string) (Element, error) {
	handles, err := ce.QueryAll(selector)
	if err != nil {
		return nil, err
	}
	if len(handles) == 0 {
		return nil, fmt.Errorf("未找到子元素: %s", selector)
	}
	return handles[0], nil
}

func (ce *chromedpElement) QueryAll(selector string) ([]Element, error) {
	ctx, cancel := context.WithTimeout(ce.pageCtx, 3*time.Second)
	defer cancel()
	var nodes []*cdp.Node
	err := chromedp.Run(ctx, chromedp.Nodes(selector, &nodes,
		chromedp.ByQueryAll, chromedp.FromNode(ce.node), chromedp.AtLeast(0)))
	if err != nil {
		return nil, err
	}
	handles := make([]Element, 0, len(nodes))
	for _, node := range nodes {
		handles = append(handles, &chromedpElement{pageCtx: ce.pageCtx, node: node})
	}
	return handles, nil
}

func (ce *chromedpElement) Click() error {
	ctx, cancel := context.WithTimeout(ce.pageCtx, 3*time.Second)
	defer cancel()
	return chromedp.Run(ctx, chromedp.MouseClickNode(ce.node))
}
