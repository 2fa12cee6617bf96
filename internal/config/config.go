package config

type Config struct {
	Rod struct {
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
		Leakless             bool   `json:"leakless"`
		Bin                  string `json:"bin"`
		Trace                bool   `json:"trace"`
	} `json:"rod"`

	Chromedp struct {
		LifeTime             int    `json:"life_time"`
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
	} `json:"chromedp"`

	Directory struct {
		//每个UI步骤等待元素出现/可点击的预算(秒)
		WaitSeconds int `json:"wait_seconds"`
		//翻页后等待页面内容稳定的时间(秒)
		SettleSeconds int    `json:"settle_seconds"`
		OutputDir     string `json:"output_dir"`
	} `json:"directory"`

	License struct {
		UserAgent       string                 `json:"user_agent"`
		Delay           int                    `json:"delay"`
		RandomDelay     int                    `json:"random_delay"`
		IgnoreRobotsTxt bool                   `json:"ignore_robots_txt"`
		Boards          map[string]BoardConfig `json:"boards"`
	} `json:"license"`

	Elasticsearch struct {
		Enabled  bool   `json:"enabled"`
		Username string `json:"username"`
		Password string `json:"password"`
		Address  string `json:"address"`
	} `json:"elasticsearch"`

	Embedder struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		Model     string `json:"model"`
		BatchSize int    `json:"batch_size"`
	} `json:"embedder"`
}

// BoardConfig 单个州执照委员会查询页的配置
// SearchURL中的%s会被替换为url编码后的执业者姓名
type BoardConfig struct {
	SearchURL      string `json:"search_url"`
	RowSelector    string `json:"row_selector"`
	NumberSelector string `json:"number_selector"`
	StatusSelector string `json:"status_selector"`
	ExpirySelector string `json:"expiry_selector"`
}
