package site

// Descriptors 返回内置的目录站点描述符,键为命令行站点名
func Descriptors() map[string]*Descriptor {
	return map[string]*Descriptor{
		"anthem":     anthemDescriptor(),
		"uhc":        uhcDescriptor(),
		"psychtoday": psychTodayDescriptor(),
	}
}

func anthemDescriptor() *Descriptor {
	return &Descriptor{
		Site:    "anthem",
		Network: "Anthem",
		BaseURL: "https://www.anthem.com/find-care/",
		Steps:   []StepKind{StepGuestGate, StepLocation, StepSpecialty, StepRadius},
		SpecialtyVocab: map[string]string{
			"mental_health": "Mental Health",
			"psychiatry":    "Psychiatrist",
			"psychology":    "Psychologist",
			"therapy":       "Therapist",
			"counseling":    "Counselor",
		},
		DefaultSpecialtyTerm: "Mental Health",
		Selectors: SelectorSet{
			PageReady:          ".homepage",
			GuestButton:        "//button[contains(text(), 'Search as Guest')]",
			PostGuestMarker:    "#search-location",
			LocationInput:      "#search-location",
			LocationSubmit:     "//button[contains(text(), 'Continue')]",
			PostLocationMarker: "#search-term",
			SpecialtyInput:     "#search-term",
			Suggestion:         ".search-suggestions .suggestion",
			SpecialtySubmit:    "//button[contains(text(), 'Search')]",
			RadiusControl:      "//button[contains(text(), 'Distance')]",
			RadiusOption:       "//input[@value='%d']",
			RadiusApply:        "//button[contains(text(), 'Apply')]",
			ResultsReady:       ".provider-card, .no-results",
			NoResults:          ".no-results",
			Card:               ".provider-card",
			PaginationInfo:     ".pagination-info",
			NextButton:         ".pagination .next",
		},
		Fields: FieldSelectors{
			Name:         ".provider-name",
			Practice:     ".facility-name",
			Specialties:  ".specialty",
			Address:      ".address",
			Phone:        ".phone",
			Accepting:    ".accepting-status",
			ProviderID:   ".provider-id",
			ExpandToggle: ".toggle-details",
		},
	}
}

func uhcDescriptor() *Descriptor {
	return &Descriptor{
		Site:    "uhc",
		Network: "UHC",
		BaseURL: "https://connect.werally.com/provider-search/uhc",
		//UHC先选专科再输入位置,半径在提交搜索前选定
		Steps: []StepKind{StepSubDirectory, StepSpecialty, StepRadius, StepLocation},
		SpecialtyVocab: map[string]string{
			"mental_health": "Mental Health",
			"psychiatry":    "Psychiatrist",
			"psychology":    "Psychologist",
			"therapy":       "Therapist",
		},
		DefaultSpecialtyTerm: "Mental Health",
		Selectors: SelectorSet{
			PageReady:              "#search-form",
			SubDirectoryButton:     "//button[contains(text(), 'Medical Professional')]",
			PostSubDirectoryMarker: "#providertypeahead",
			SpecialtyInput:         "#providertypeahead",
			Suggestion:             ".typeahead-menu .typeahead-item",
			LocationInput:          "#location-typeahead",
			LocationSubmit:         "//button[@type='submit' and contains(text(), 'Search')]",
			PostLocationMarker:     ".provider-info, .no-results-message",
			RadiusControl:          "//select[contains(@id, 'radius')]",
			RadiusOption:           "//select[contains(@id, 'radius')]/option[@value='%d']",
			ResultsReady:           ".provider-info, .no-results-message",
			NoResults:              ".no-results-message",
			Card:                   ".provider-info",
			PaginationInfo:         ".pagination-container li:nth-last-child(2)",
			NextButton:             ".pagination-container li:last-child a",
		},
		Fields: FieldSelectors{
			Name:        "h2",
			Practice:    ".facility-name",
			Specialties: ".specialty-list",
			Address:     ".address-container .address",
			Phone:       ".phone-number",
			Accepting:   ".accepting-status",
		},
	}
}

func psychTodayDescriptor() *Descriptor {
	return &Descriptor{
		Site:    "psychtoday",
		Network: "Psychology Today",
		BaseURL: "https://www.psychologytoday.com/us/therapists",
		//该站点没有半径控件,吸附后的半径仅用于记录
		Steps: []StepKind{StepLocation, StepSpecialty},
		SpecialtyVocab: map[string]string{
			"mental_health": "Mental Health",
			"psychiatry":    "Psychiatrist",
			"psychology":    "Psychologist",
			"therapy":       "Therapist",
			"counseling":    "Counselor",
		},
		DefaultSpecialtyTerm: "Mental Health",
		Selectors: SelectorSet{
			PageReady:          "#search-location",
			LocationInput:      "#search-location",
			LocationSubmit:     "//button[contains(text(), 'Search')]",
			PostLocationMarker: ".results",
			SpecialtyInput:     "#search-term",
			Suggestion:         ".search-suggestions .suggestion",
			SpecialtySubmit:    "//button[contains(text(), 'Search')]",
			ResultsReady:       ".results",
			NoResults:          ".no-results",
			Card:               ".provider-card",
			NextButton:         ".pagination .next",
		},
		Fields: FieldSelectors{
			Name:        ".provider-name",
			Practice:    ".facility-name",
			Specialties: ".specialty",
			Address:     ".address",
			Phone:       ".phone",
			Accepting:   ".accepting-status",
			ProviderID:  ".provider-id",
		},
	}
}
