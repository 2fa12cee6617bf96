package license

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/gocolly/colly/v2"
)

// boardClient 基于colly的州执照委员会查询客户端
// 委员会查询页是静态HTML,不需要受控浏览器
type boardClient struct {
	cfg *config.Config
}

func InitBoardClient(cfg *config.Config) Client {
	return &boardClient{cfg: cfg}
}

func (bc *boardClient) FetchLicense(ctx context.Context, providerName, state string) (*Record, error) {
	board, ok := bc.cfg.License.Boards[strings.ToUpper(state)]
	if !ok {
		return nil, fmt.Errorf("未配置州 %s 的执照委员会", state)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var opts []colly.CollectorOption
	if bc.cfg.License.UserAgent != "" {
		opts = append(opts, colly.UserAgent(bc.cfg.License.UserAgent))
	}
	if bc.cfg.License.IgnoreRobotsTxt {
		opts = append(opts, colly.IgnoreRobotsTxt())
	}
	c := colly.NewCollector(opts...)
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       time.Duration(bc.cfg.License.Delay) * time.Second,
		RandomDelay: time.Duration(bc.cfg.License.RandomDelay) * time.Second,
	})

	var record *Record
	c.OnHTML(board.RowSelector, func(e *colly.HTMLElement) {
		//只取第一条匹配记录
		if record != nil {
			return
		}
		record = &Record{
			LicenseNumber: strings.TrimSpace(e.ChildText(board.NumberSelector)),
			LicenseStatus: strings.TrimSpace(e.ChildText(board.StatusSelector)),
			LicenseExpiry: strings.TrimSpace(e.ChildText(board.ExpirySelector)),
		}
	})

	searchURL := fmt.Sprintf(board.SearchURL, url.QueryEscape(providerName))
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("访问执照委员会失败: %w", err)
	}
	c.Wait()

	if record == nil || record.LicenseNumber == "" {
		return nil, fmt.Errorf("州 %s 未找到 %s 的执照记录", state, providerName)
	}
	return record, nil
}
