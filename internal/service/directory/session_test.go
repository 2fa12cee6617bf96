package directory

import (
	"context"
	"testing"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
	"github.com/LouYuanbo1/directorycrawler/internal/site"
	"github.com/LouYuanbo1/directorycrawler/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSession 记录是否被触碰过的空会话
type stubSession struct {
	touched bool
}

func (s *stubSession) Navigate(url string) error { s.touched = true; return nil }
func (s *stubSession) WaitUntilPresent(selector string, timeout time.Duration) error {
	s.touched = true
	return nil
}
func (s *stubSession) WaitUntilClickable(selector string, timeout time.Duration) error {
	s.touched = true
	return nil
}
func (s *stubSession) WaitUntilStale(el browser.Element, timeout time.Duration) error {
	s.touched = true
	return nil
}
func (s *stubSession) Click(selector string) error              { s.touched = true; return nil }
func (s *stubSession) Type(selector string, text string) error  { s.touched = true; return nil }
func (s *stubSession) QueryAll(selector string) ([]browser.Element, error) {
	s.touched = true
	return nil, nil
}
func (s *stubSession) CurrentURL() string { return "" }
func (s *stubSession) Close()             {}

func TestSearchRejectsMissingZipBeforeBrowser(t *testing.T) {
	b := &stubSession{}
	desc := site.Descriptors()["anthem"]
	session := InitSession(b, desc, &config.Config{})

	records, err := session.Search(context.Background(), &param.SearchCriteria{})
	require.Error(t, err)

	var validationErr *site.InputValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "zip_code", validationErr.Field)
	assert.Nil(t, records)
	//条件校验失败时不应有任何浏览器交互
	assert.False(t, b.touched)
}

func TestSearchDoesNotMutateCallerCriteria(t *testing.T) {
	b := &stubSession{}
	desc := site.Descriptors()["psychtoday"]
	session := InitSession(b, desc, &config.Config{})

	criteria := &param.SearchCriteria{ZipCode: "62704"}
	//导航会在stub上直接走通并以空结果返回
	_, _ = session.Search(context.Background(), criteria)

	assert.Equal(t, 0, criteria.Radius)
	assert.Empty(t, criteria.Specialty)
}
