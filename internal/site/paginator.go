package site

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
)

var pageOfRe = regexp.MustCompile(`Page\s+(\d+)\s+of\s+(\d+)`)

// WalkResult 一次遍历的统计,Stall非空表示遍历提前截断
type WalkResult struct {
	Pages     int
	Truncated bool
	Stall     *PaginationStall
}

// Paginator 翻页控制器,在导航就绪后逐页产出卡片句柄
// 与一次存活的会话绑定,不可重入
type Paginator struct {
	session browser.Session
	desc    *Descriptor
	wait    time.Duration
	settle  time.Duration
}

func InitPaginator(session browser.Session, desc *Descriptor, wait, settle time.Duration) *Paginator {
	return &Paginator{session: session, desc: desc, wait: wait, settle: settle}
}

// Walk 逐页回调yield,翻页失败时截断并返回已收集的部分,不作为错误抛出
func (p *Paginator) Walk(ctx context.Context, yield func(pageIndex int, cards []browser.Element) error) (*WalkResult, error) {
	result := &WalkResult{}
	sel := p.desc.Selectors

	//显式的无结果标志:产出为空,正常结束
	if sel.NoResults != "" {
		markers, err := p.session.QueryAll(sel.NoResults)
		if err == nil && len(markers) > 0 {
			return result, nil
		}
	}

	totalPages := p.totalPages()
	log.Printf("站点 %s: 共 %d 页结果", p.desc.Site, totalPages)

	for currentPage := 1; currentPage <= totalPages; currentPage++ {
		if err := ctx.Err(); err != nil {
			result.Truncated = true
			result.Stall = &PaginationStall{PageIndex: currentPage, Cause: err}
			return result, nil
		}

		cards, err := p.session.QueryAll(sel.Card)
		if err != nil {
			result.Truncated = true
			result.Stall = &PaginationStall{PageIndex: currentPage, Cause: err}
			return result, nil
		}
		//页中途卡片数为零按结果耗尽处理,不是错误
		if len(cards) == 0 {
			return result, nil
		}

		log.Printf("站点 %s: 处理第 %d/%d 页, %d 张卡片", p.desc.Site, currentPage, totalPages, len(cards))
		if err := yield(currentPage, cards); err != nil {
			return result, err
		}
		result.Pages++

		if currentPage == totalPages {
			break
		}
		if stall := p.advance(currentPage, cards[0]); stall != nil {
			result.Truncated = true
			result.Stall = stall
			return result, nil
		}
	}
	return result, nil
}

// advance 点击下一页并等待旧首卡失效且新卡出现,防止读到半替换的DOM
func (p *Paginator) advance(currentPage int, firstCard browser.Element) *PaginationStall {
	sel := p.desc.Selectors

	if err := p.session.WaitUntilClickable(sel.NextButton, p.wait); err != nil {
		return &PaginationStall{PageIndex: currentPage, Cause: err}
	}
	if err := p.session.Click(sel.NextButton); err != nil {
		return &PaginationStall{PageIndex: currentPage, Cause: err}
	}
	if err := p.session.WaitUntilStale(firstCard, p.wait); err != nil {
		return &PaginationStall{PageIndex: currentPage, Cause: err}
	}
	if err := p.session.WaitUntilPresent(sel.Card, p.wait); err != nil {
		return &PaginationStall{PageIndex: currentPage, Cause: err}
	}
	time.Sleep(p.settle)
	return nil
}

// totalPages 从分页摘要读取总页数,缺失或无法解析时按单页处理
func (p *Paginator) totalPages() int {
	sel := p.desc.Selectors
	if sel.PaginationInfo == "" {
		return 1
	}
	infos, err := p.session.QueryAll(sel.PaginationInfo)
	if err != nil || len(infos) == 0 {
		return 1
	}
	text, err := infos[0].Text()
	if err != nil {
		return 1
	}
	return parsePageCount(text)
}

// parsePageCount 兼容两种分页摘要: "Page X of Y" 与纯数字的末页编号
func parsePageCount(text string) int {
	if m := pageOfRe.FindStringSubmatch(text); m != nil {
		if total, err := strconv.Atoi(m[2]); err == nil && total >= 1 {
			return total
		}
	}
	if total, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && total >= 1 {
		return total
	}
	return 1
}
