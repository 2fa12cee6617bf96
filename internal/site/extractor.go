package site

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/LouYuanbo1/directorycrawler/internal/domain/entity"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
)

var (
	//兼容 "City, ST 12345" 以及州和邮编被拆开的 "City, ST" 形式
	cityStateZipRe = regexp.MustCompile(`^\s*([^,]+),\s*([A-Za-z]{2})\b(?:[\s,]*(\d{5}))?`)
	zipRe          = regexp.MustCompile(`\b(\d{5})\b`)
	providerIDRe   = regexp.MustCompile(`ID:\s*(\w+)`)
)

// Extractor 字段提取器,把一张卡片的子元素映射为ProviderRecord
// 单个子元素缺失时对应字段保持零值,不影响同卡其余字段
type Extractor struct {
	desc *Descriptor
}

func InitExtractor(desc *Descriptor) *Extractor {
	return &Extractor{desc: desc}
}

// ExtractCard 提取一张卡片,姓名为空的卡片被丢弃并返回错误供调用方记录
func (e *Extractor) ExtractCard(card browser.Element, sourceURL string) (*entity.ProviderRecord, error) {
	fields := e.desc.Fields

	//部分站点需要先展开卡片才能看到全部字段,展开失败不致命
	if fields.ExpandToggle != "" {
		if toggle, err := card.Query(fields.ExpandToggle); err == nil {
			_ = toggle.Click()
		}
	}

	record := &entity.ProviderRecord{
		Network:   e.desc.Network,
		SourceURL: sourceURL,
	}

	record.ProviderName = e.text(card, fields.Name)
	if record.ProviderName == "" {
		return nil, fmt.Errorf("缺少执业者姓名")
	}

	record.PracticeName = e.text(card, fields.Practice)
	record.Specialties = e.text(card, fields.Specialties)
	record.Phone = e.text(card, fields.Phone)

	if addr := e.text(card, fields.Address); addr != "" {
		record.Address, record.City, record.State, record.ZipCode = parseAddress(addr)
	}

	//对状态元素做文本扫描: 含"Yes"为是,元素存在但不含为否,元素缺失为未知
	if fields.Accepting != "" {
		if el, err := card.Query(fields.Accepting); err == nil {
			if status, err := el.Text(); err == nil && status != "" {
				if strings.Contains(status, "Yes") {
					record.AcceptingNewPatients = "Yes"
				} else {
					record.AcceptingNewPatients = "No"
				}
			}
		}
	}

	if idText := e.text(card, fields.ProviderID); idText != "" {
		if m := providerIDRe.FindStringSubmatch(idText); m != nil {
			record.ProviderID = m[1]
		}
	}

	return record, nil
}

// text 取选择器对应子元素的文本,元素缺失或选择器为空时返回空串
func (e *Extractor) text(card browser.Element, selector string) string {
	if selector == "" {
		return ""
	}
	el, err := card.Query(selector)
	if err != nil {
		return ""
	}
	t, err := el.Text()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(t)
}

// parseAddress 按行拆地址: 首行为街道,其余行解析 city/state/zip
// state与zip要么格式合法要么为空,不会留下残缺值
func parseAddress(text string) (address, city, state, zip string) {
	lines := strings.Split(text, "\n")
	address = strings.TrimSpace(lines[0])
	if len(lines) < 2 {
		return address, "", "", ""
	}
	rest := strings.TrimSpace(strings.Join(lines[1:], " "))

	m := cityStateZipRe.FindStringSubmatch(rest)
	if m == nil {
		return address, "", "", ""
	}
	city = strings.TrimSpace(m[1])
	state = strings.ToUpper(m[2])
	if m[3] != "" {
		zip = m[3]
	} else if zm := zipRe.FindStringSubmatch(rest[len(m[0]):]); zm != nil {
		zip = zm[1]
	}
	return address, city, state, zip
}
