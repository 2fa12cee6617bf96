package param

// SupportedRadius 站点通用的可选搜索半径(英里)
var SupportedRadius = []int{5, 10, 15, 25, 50, 100}

const (
	DefaultRadius    = 25
	DefaultSpecialty = "mental_health"
)

// SearchCriteria 一次目录搜索的条件
type SearchCriteria struct {
	ZipCode   string `json:"zip_code"`
	Radius    int    `json:"radius"`
	Specialty string `json:"specialty"`
}

func (sc *SearchCriteria) IsValid() bool {
	return sc.ZipCode != ""
}

// Normalize 填充缺省值,半径吸附到支持的档位
func (sc *SearchCriteria) Normalize() {
	if sc.Radius <= 0 {
		sc.Radius = DefaultRadius
	}
	sc.Radius = SnapRadius(sc.Radius)
	if sc.Specialty == "" {
		sc.Specialty = DefaultSpecialty
	}
}

// SnapRadius 将请求半径吸附到最近的支持档位,距离相同时取较小值
func SnapRadius(radius int) int {
	closest := SupportedRadius[0]
	for _, r := range SupportedRadius[1:] {
		if abs(r-radius) < abs(closest-radius) {
			closest = r
		}
	}
	return closest
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
