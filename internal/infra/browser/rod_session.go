package browser

import (
	"fmt"
	"log"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

func InitRodSession(cfg *config.Config) (Session, error) {
	l := launcher.New().
		Headless(cfg.Rod.Headless).
		Leakless(cfg.Rod.Leakless)
	if cfg.Rod.Bin != "" {
		l = l.Bin(cfg.Rod.Bin)
	}
	if cfg.Rod.UserDataDir != "" {
		l = l.UserDataDir(cfg.Rod.UserDataDir)
	}
	if cfg.Rod.DisableBlinkFeatures != "" {
		l = l.Set("disable-blink-features", cfg.Rod.DisableBlinkFeatures)
	}
	if cfg.Rod.Incognito {
		l = l.Set("incognito")
	}
	if cfg.Rod.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}
	if cfg.Rod.NoSandbox {
		l = l.Set("no-sandbox")
	}
	if cfg.Rod.UserAgent != "" {
		l = l.Set("user-agent", cfg.Rod.UserAgent)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}

	b := rod.New().ControlURL(controlURL).Trace(cfg.Rod.Trace)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("连接浏览器失败: %w", err)
	}
	return &rodSession{launcher: l, browser: b}, nil
}

func (rs *rodSession) Close() {
	if rs.page != nil {
		if err := rs.page.Close(); err != nil {
			log.Printf("关闭页面失败: %v", err)
		}
	}
	if err := rs.browser.Close(); err != nil {
		log.Printf("关闭浏览器失败: %v", err)
	}
	rs.launcher.Kill()
}

func (rs *rodSession) Navigate(url string) error {
	if rs.page == nil {
		page, err := stealth.Page(rs.browser)
		if err != nil {
			return fmt.Errorf("创建页面失败: %w", err)
		}
		rs.page = page
	}
	if err := rs.page.Navigate(url); err != nil {
		return fmt.Errorf("导航失败: %w", err)
	}
	return rs.page.WaitLoad()
}

func (rs *rodSession) element(selector string, timeout time.Duration) (*rod.Element, error) {
	p := rs.page.Timeout(timeout)
	if isXPath(selector) {
		return p.ElementX(selector)
	}
	return p.Element(selector)
}

func (rs *rodSession) WaitUntilPresent(selector string, timeout time.Duration) error {
	el, err := rs.element(selector, timeout)
	if err != nil {
		return fmt.Errorf("等待元素出现超时 %s: %w", selector, err)
	}
	el.CancelTimeout()
	return nil
}

func (rs *rodSession) WaitUntilClickable(selector string, timeout time.Duration) error {
	el, err := rs.element(selector, timeout)
	if err != nil {
		return fmt.Errorf("等待元素出现超时 %s: %w", selector, err)
	}
	defer el.CancelTimeout()
	if _, err := el.WaitInteractable(); err != nil {
		return fmt.Errorf("元素不可点击 %s: %w", selector, err)
	}
	return nil
}

// WaitUntilStale 轮询句柄直到其指向的节点从页面中移除
func (rs *rodSession) WaitUntilStale(el Element, timeout time.Duration) error {
	re, ok := el.(*rodElement)
	if !ok {
		return fmt.Errorf("未知的元素句柄类型: %T", el)
	}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if _, err := re.el.Matches("*"); err != nil {
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return ErrStaleTimeout
}

func (rs *rodSession) Click(selector string) error {
	el, err := rs.element(selector, 3*time.Second)
	if err != nil {
		return fmt.Errorf("查找元素失败 %s: %w", selector, err)
	}
	defer el.CancelTimeout()
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("点击失败 %s: %w", selector, err)
	}
	return nil
}

func (rs *rodSession) Type(selector string, text string) error {
	el, err := rs.element(selector, 3*time.Second)
	if err != nil {
		return fmt.Errorf("查找元素失败 %s: %w", selector, err)
	}
	defer el.CancelTimeout()
	//先清空已有内容再输入
	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("选中输入框内容失败 %s: %w", selector, err)
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("输入失败 %s: %w", selector, err)
	}
	return nil
}

func (rs *rodSession) QueryAll(selector string) ([]Element, error) {
	var els rod.Elements
	var err error
	if isXPath(selector) {
		els, err = rs.page.ElementsX(selector)
	} else {
		els, err = rs.page.Elements(selector)
	}
	if err != nil {
		return nil, fmt.Errorf("查询元素失败 %s: %w", selector, err)
	}
	handles := make([]Element, 0, len(els))
	for _, el := range els {
		handles = append(handles, &rodElement{el: el})
	}
	return handles, nil
}

func (rs *rodSession) CurrentURL() string {
	if rs.page == nil {
		return ""
	}
	info, err := rs.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

type rodElement struct {
	el *rod.Element
}

func (re *rodElement) Text() (string, error) {
	return re.el.Text()
}

func (re *rodElement) Query(selector string) (Element, error) {
	var el *rod.Element
	var err error
	//子查询不等待,元素不存在立即返回错误
	t := re.el.Timeout(500 * time.Millisecond)
	if isXPath(selector) {
		el, err = t.ElementX(selector)
	} else {
		el, err = t.Element(selector)
	}
	if err != nil {
		return nil, err
	}
	el.CancelTimeout()
	return &rodElement{el: el}, nil
}

func (re *rodElement) QueryAll(selector string) ([]Element, error) {
	var els rod.Elements
	var err error
	if isXPath(selector) {
		els, err = re.el.ElementsX(selector)
	} else {
		els, err = re.el.Elements(selector)
	}
	if err != nil {
		return nil, err
	}
	handles := make([]Element, 0, len(els))
	for _, el := range els {
		handles = append(handles, &rodElement{el: el})
	}
	return handles, nil
}

func (re *rodElement) Click() error {
	return re.el.Click(proto.InputMouseButtonLeft, 1)
}
