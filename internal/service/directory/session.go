package directory

import (
	"context"
	"log"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/LouYuanbo1/directorycrawler/internal/domain/entity"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
	"github.com/LouYuanbo1/directorycrawler/internal/site"
	"github.com/LouYuanbo1/directorycrawler/param"
)

// Session 一次目录搜索会话,独占一个浏览器会话
// 浏览器的释放是调用方的义务,任何退出路径上都必须Close
type Session struct {
	session browser.Session
	desc    *site.Descriptor
	wait    time.Duration
	settle  time.Duration
}

func InitSession(b browser.Session, desc *site.Descriptor, cfg *config.Config) *Session {
	return &Session{
		session: b,
		desc:    desc,
		wait:    time.Duration(cfg.Directory.WaitSeconds) * time.Second,
		settle:  time.Duration(cfg.Directory.SettleSeconds) * time.Second,
	}
}

// Search 驱动导航自动机到结果就绪,再逐页提取记录
// 条件校验失败与导航失败都返回空结果,调用方记录后继续其他站点
func (s *Session) Search(ctx context.Context, criteria *param.SearchCriteria) ([]*entity.ProviderRecord, error) {
	if !criteria.IsValid() {
		//缺少邮编时不接触浏览器直接短路
		return nil, &site.InputValidationError{Field: "zip_code"}
	}
	normalized := *criteria
	normalized.Normalize()

	navigator := site.InitNavigator(s.session, s.desc, s.wait, s.settle)
	outcome, err := navigator.Run(ctx, &normalized)
	if err != nil {
		//导航中途失败后页面状态不可信,不做任何提取
		return nil, err
	}
	if outcome == site.OutcomeNoResults {
		return []*entity.ProviderRecord{}, nil
	}

	extractor := site.InitExtractor(s.desc)
	paginator := site.InitPaginator(s.session, s.desc, s.wait, s.settle)

	records := make([]*entity.ProviderRecord, 0)
	sourceURL := s.session.CurrentURL()

	result, err := paginator.Walk(ctx, func(pageIndex int, cards []browser.Element) error {
		for i, card := range cards {
			record, err := extractor.ExtractCard(card, sourceURL)
			if err != nil {
				warning := &site.ExtractionWarning{CardIndex: i, Cause: err}
				log.Printf("站点 %s: 第 %d 页 %v", s.desc.Site, pageIndex, warning)
				continue
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return records, err
	}
	if result.Truncated {
		log.Printf("站点 %s: %v, 返回已收集的 %d 条记录", s.desc.Site, result.Stall, len(records))
	}

	log.Printf("站点 %s: 共提取 %d 条记录", s.desc.Site, len(records))
	return records, nil
}
