package site

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
	"github.com/LouYuanbo1/directorycrawler/param"
)

// StepResults 不在描述符步骤列表中,是所有站点共同的收尾等待
const StepResults StepKind = "results"

// Outcome 导航自动机的终态
type Outcome int

const (
	//结果容器已出现,可以开始翻页提取
	OutcomeReady Outcome = iota
	//站点显式报告无匹配结果,空结果是合法结果
	OutcomeNoResults
)

// Navigator 通用导航自动机,按描述符的步骤顺序驱动一次浏览器会话
// 除半径筛选外的步骤都是必经步骤,超时即中止整次搜索
type Navigator struct {
	session browser.Session
	desc    *Descriptor
	wait    time.Duration
	settle  time.Duration
}

func InitNavigator(session browser.Session, desc *Descriptor, wait, settle time.Duration) *Navigator {
	return &Navigator{session: session, desc: desc, wait: wait, settle: settle}
}

func (n *Navigator) Run(ctx context.Context, criteria *param.SearchCriteria) (Outcome, error) {
	log.Printf("站点 %s: 开始导航 %s", n.desc.Site, n.desc.BaseURL)

	if err := n.session.Navigate(n.desc.BaseURL); err != nil {
		return 0, n.failed(StepKind("navigate"), err)
	}
	if n.desc.Selectors.PageReady != "" {
		if err := n.session.WaitUntilPresent(n.desc.Selectors.PageReady, n.wait); err != nil {
			return 0, n.failed(StepKind("navigate"), err)
		}
	}

	for _, step := range n.desc.Steps {
		if err := ctx.Err(); err != nil {
			return 0, n.failed(step, err)
		}
		switch step {
		case StepGuestGate:
			if err := n.stepGuestGate(); err != nil {
				return 0, n.failed(step, err)
			}
		case StepSubDirectory:
			if err := n.stepSubDirectory(); err != nil {
				return 0, n.failed(step, err)
			}
		case StepLocation:
			if err := n.stepLocation(criteria.ZipCode); err != nil {
				return 0, n.failed(step, err)
			}
		case StepSpecialty:
			if err := n.stepSpecialty(criteria.Specialty); err != nil {
				return 0, n.failed(step, err)
			}
		case StepRadius:
			//半径筛选尽力而为,失败时沿用站点默认半径继续
			if err := n.stepRadius(criteria.Radius); err != nil {
				log.Printf("站点 %s: 设置半径失败,沿用默认半径: %v", n.desc.Site, err)
			}
		default:
			return 0, n.failed(step, fmt.Errorf("未知的导航步骤"))
		}
	}

	if err := n.session.WaitUntilPresent(n.desc.Selectors.ResultsReady, n.wait); err != nil {
		return 0, n.failed(StepResults, err)
	}
	if n.desc.Selectors.NoResults != "" {
		markers, err := n.session.QueryAll(n.desc.Selectors.NoResults)
		if err == nil && len(markers) > 0 {
			log.Printf("站点 %s: 没有匹配的结果", n.desc.Site)
			return OutcomeNoResults, nil
		}
	}
	log.Printf("站点 %s: 导航完成,结果区已就绪", n.desc.Site)
	return OutcomeReady, nil
}

func (n *Navigator) failed(step StepKind, cause error) error {
	return &NavigationError{Site: n.desc.Site, Step: step, Cause: cause}
}

func (n *Navigator) stepGuestGate() error {
	sel := n.desc.Selectors
	if err := n.session.WaitUntilClickable(sel.GuestButton, n.wait); err != nil {
		return err
	}
	if err := n.session.Click(sel.GuestButton); err != nil {
		return err
	}
	return n.session.WaitUntilPresent(sel.PostGuestMarker, n.wait)
}

func (n *Navigator) stepSubDirectory() error {
	sel := n.desc.Selectors
	if err := n.session.WaitUntilClickable(sel.SubDirectoryButton, n.wait); err != nil {
		return err
	}
	if err := n.session.Click(sel.SubDirectoryButton); err != nil {
		return err
	}
	return n.session.WaitUntilPresent(sel.PostSubDirectoryMarker, n.wait)
}

func (n *Navigator) stepLocation(zipCode string) error {
	sel := n.desc.Selectors
	if err := n.session.WaitUntilClickable(sel.LocationInput, n.wait); err != nil {
		return err
	}
	if err := n.session.Type(sel.LocationInput, zipCode); err != nil {
		return err
	}
	if sel.LocationSubmit != "" {
		if err := n.session.WaitUntilClickable(sel.LocationSubmit, n.wait); err != nil {
			return err
		}
		if err := n.session.Click(sel.LocationSubmit); err != nil {
			return err
		}
	}
	if sel.PostLocationMarker != "" {
		return n.session.WaitUntilPresent(sel.PostLocationMarker, n.wait)
	}
	return nil
}

func (n *Navigator) stepSpecialty(specialty string) error {
	sel := n.desc.Selectors
	term := n.desc.SpecialtyTerm(specialty)
	log.Printf("站点 %s: 专科 %q 映射为 %q", n.desc.Site, specialty, term)

	if err := n.session.WaitUntilClickable(sel.SpecialtyInput, n.wait); err != nil {
		return err
	}
	if err := n.session.Type(sel.SpecialtyInput, term); err != nil {
		return err
	}
	//站点要求从自动补全中显式选中建议项
	if sel.Suggestion != "" {
		if err := n.session.WaitUntilClickable(sel.Suggestion, n.wait); err != nil {
			return err
		}
		if err := n.session.Click(sel.Suggestion); err != nil {
			return err
		}
	}
	if sel.SpecialtySubmit != "" {
		if err := n.session.WaitUntilClickable(sel.SpecialtySubmit, n.wait); err != nil {
			return err
		}
		if err := n.session.Click(sel.SpecialtySubmit); err != nil {
			return err
		}
	}
	return nil
}

func (n *Navigator) stepRadius(radius int) error {
	sel := n.desc.Selectors
	if sel.RadiusControl == "" {
		log.Printf("站点 %s: 无半径控件,沿用默认半径", n.desc.Site)
		return nil
	}
	if err := n.session.WaitUntilClickable(sel.RadiusControl, n.wait); err != nil {
		return err
	}
	if err := n.session.Click(sel.RadiusControl); err != nil {
		return err
	}
	option := fmt.Sprintf(sel.RadiusOption, radius)
	if err := n.session.WaitUntilClickable(option, n.wait); err != nil {
		return err
	}
	if err := n.session.Click(option); err != nil {
		return err
	}
	if sel.RadiusApply != "" {
		if err := n.session.WaitUntilClickable(sel.RadiusApply, n.wait); err != nil {
			return err
		}
		if err := n.session.Click(sel.RadiusApply); err != nil {
			return err
		}
	}
	//等待结果按新半径刷新
	time.Sleep(n.settle)
	log.Printf("站点 %s: 搜索半径设为 %d 英里", n.desc.Site, radius)
	return nil
}
