package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"strings"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/LouYuanbo1/directorycrawler/internal/domain/model"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/embedding"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/license"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/persistence/csvfile"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/persistence/es"
	"github.com/LouYuanbo1/directorycrawler/internal/service/directory"
	"github.com/LouYuanbo1/directorycrawler/param"
)

//使用go:embed嵌入appconfig.json文件
//下方注释重要,不能删除
//在实际使用时，注意与文件名的对应，Github上保存的appconfig_example.json文件为样例，以实际为准,比如我这里是appconfig.json
//When using it in practice, pay attention to the correspondence between the filename and the actual filename.
//The appconfig_example.json file saved on GitHub is just an example;
//use your own file, for example, mine is appconfig.json.

//go:embed appconfig/appconfig.json
var appConfig []byte

func main() {
	siteFlag := flag.String("site", "all", "站点名 (anthem|uhc|psychtoday|all), 逗号分隔可多选")
	zipFlag := flag.String("zip", "", "搜索中心邮编 (必填)")
	radiusFlag := flag.Int("radius", param.DefaultRadius, "搜索半径(英里), 自动对齐到站点支持的档位")
	specialtyFlag := flag.String("specialty", param.DefaultSpecialty, "专科类别")
	flag.Parse()

	appcfg, err := config.ParseConfig(appConfig)
	if err != nil {
		log.Fatalf("解析配置失败: %v", err)
	}

	criteria := &param.SearchCriteria{
		ZipCode:   *zipFlag,
		Radius:    *radiusFlag,
		Specialty: *specialtyFlag,
	}
	if !criteria.IsValid() {
		log.Fatalf("缺少邮编, 用 -zip 指定")
	}

	ctx := context.Background()

	//ES与嵌入模型是可选的,不可用时只写CSV
	var typedEsClient es.TypedEsClient[*model.ProviderDoc]
	var embedder embedding.Embedder
	if appcfg.Elasticsearch.Enabled {
		typedEsClient, err = es.InitTypedEsClient[*model.ProviderDoc](appcfg)
		if err != nil {
			log.Fatalf("初始化Elasticsearch客户端失败: %v", err)
		}
		embedder, err = embedding.InitEmbedder(ctx, appcfg)
		if err != nil {
			log.Fatalf("初始化Embedder失败: %v", err)
		}
	}

	//每个站点一个独立的chromedp上下文,生命周期由配置控制
	factory := directory.BrowserFactory(func() (browser.Session, error) {
		return browser.InitChromedpSession(context.Background(), appcfg), nil
	})

	service := directory.InitService(
		appcfg,
		factory,
		license.InitBoardClient(appcfg),
		csvfile.InitWriter(appcfg.Directory.OutputDir),
		typedEsClient,
		embedder,
	)

	sites := strings.Split(*siteFlag, ",")
	if err := service.Run(ctx, sites, criteria); err != nil {
		log.Fatalf("运行失败: %v", err)
	}
}
