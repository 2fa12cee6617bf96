package site

// StepKind 导航步骤的种类,一个站点描述符由有序的步骤列表构成
type StepKind string

const (
	StepGuestGate    StepKind = "guest_gate"
	StepSubDirectory StepKind = "sub_directory"
	StepLocation     StepKind = "location"
	StepSpecialty    StepKind = "specialty"
	StepRadius       StepKind = "radius"
)

// SelectorSet 站点级选择器表
// 以 // 开头的是XPath,其余是CSS;空选择器表示该站点没有对应控件
type SelectorSet struct {
	//初始页面就绪标志
	PageReady string

	//访客入口
	GuestButton     string
	PostGuestMarker string

	//子目录选择(如行为健康目录/医疗专业人员目录)
	SubDirectoryButton     string
	PostSubDirectoryMarker string

	//位置输入
	LocationInput   string
	LocationSubmit  string
	PostLocationMarker string

	//专科输入,Suggestion非空表示站点要求显式选中自动补全项
	SpecialtyInput  string
	Suggestion      string
	SpecialtySubmit string

	//半径筛选,RadiusOption中的%d会被替换为吸附后的半径
	RadiusControl string
	RadiusOption  string
	RadiusApply   string

	//结果区
	ResultsReady   string
	NoResults      string
	Card           string
	PaginationInfo string
	NextButton     string
}

// FieldSelectors 卡片内字段选择器(相对卡片的CSS)
type FieldSelectors struct {
	Name         string
	Practice     string
	Specialties  string
	Address      string
	Phone        string
	Accepting    string
	ProviderID   string
	ExpandToggle string
}

// Descriptor 一个目录站点 = 有序步骤列表 + 选择器表 + 专科词表
// 新增站点只需新增描述符,不需要新增控制流
type Descriptor struct {
	Site    string
	Network string
	BaseURL string

	Steps []StepKind

	SpecialtyVocab       map[string]string
	DefaultSpecialtyTerm string

	Selectors SelectorSet
	Fields    FieldSelectors
}

// SpecialtyTerm 将调用方的通用专科键映射为站点词表中的词,未收录的键回退到站点默认词
func (d *Descriptor) SpecialtyTerm(key string) string {
	if term, ok := d.SpecialtyVocab[key]; ok {
		return term
	}
	return d.DefaultSpecialtyTerm
}
