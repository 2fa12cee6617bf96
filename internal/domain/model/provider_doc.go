package model

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

const providerIndexName = "provider_directory"

// ProviderDoc 索引到Elasticsearch的执业者文档
type ProviderDoc struct {
	ProviderID           string    `json:"provider_id"`
	ProviderName         string    `json:"provider_name"`
	PracticeName         string    `json:"practice_name"`
	Specialties          string    `json:"specialties"`
	Address              string    `json:"address"`
	City                 string    `json:"city"`
	State                string    `json:"state"`
	ZipCode              string    `json:"zip_code"`
	Phone                string    `json:"phone"`
	AcceptingNewPatients string    `json:"accepting_new_patients"`
	Network              string    `json:"network"`
	SourceURL            string    `json:"url"`
	LicenseNumber        string    `json:"license_number"`
	LicenseStatus        string    `json:"license_status"`
	LicenseExpiry        string    `json:"license_expiry"`
	Embedding            []float32 `json:"embedding,omitempty"`
}

// GetID 站点分配的ID优先,否则对姓名+地址做哈希,保证重复爬取幂等
func (pd *ProviderDoc) GetID() string {
	if pd.ProviderID != "" {
		return pd.Network + "_" + pd.ProviderID
	}
	h := sha1.Sum([]byte(pd.Network + "|" + pd.ProviderName + "|" + pd.Address + "|" + pd.ZipCode))
	return hex.EncodeToString(h[:])
}

func (pd *ProviderDoc) GetIndex() string {
	return providerIndexName
}

func (pd *ProviderDoc) GetTypeMapping() *types.TypeMapping {
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"provider_id":            types.NewKeywordProperty(),
			"provider_name":          types.NewTextProperty(),
			"practice_name":          types.NewTextProperty(),
			"specialties":            types.NewTextProperty(),
			"address":                types.NewTextProperty(),
			"city":                   types.NewKeywordProperty(),
			"state":                  types.NewKeywordProperty(),
			"zip_code":               types.NewKeywordProperty(),
			"phone":                  types.NewKeywordProperty(),
			"accepting_new_patients": types.NewKeywordProperty(),
			"network":                types.NewKeywordProperty(),
			"url":                    types.NewKeywordProperty(),
			"license_number":         types.NewKeywordProperty(),
			"license_status":         types.NewKeywordProperty(),
			"license_expiry":         types.NewKeywordProperty(),
			"embedding":              types.NewDenseVectorProperty(),
		},
	}
}

// GetEmbeddingString 用于语义检索的文本表示
func (pd *ProviderDoc) GetEmbeddingString() string {
	parts := []string{pd.ProviderName, pd.PracticeName, pd.Specialties, pd.City, pd.State}
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func (pd *ProviderDoc) SetEmbedding(embedding []float32) {
	pd.Embedding = embedding
}

func (pd *ProviderDoc) GetEmbedding() []float32 {
	return pd.Embedding
}
