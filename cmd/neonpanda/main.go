package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lkasym/neon-panda-arcade-dashboard/internal/config"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/importer"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/server"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/util"
)

var (
	port     = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode  = flag.Bool("dev", false, "开发模式")
	dataDir  = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	workbook = flag.String("workbook", "", "启动时导入的数据工作簿路径 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Neon Panda - 游乐场运营数据分析工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *workbook != "" {
		cfg.Excel.WorkbookPath = *workbook
	}

	// 确保数据目录存在
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", dataDir)
	}

	// 创建服务器
	srv := server.NewServer(cfg)

	// 配置了工作簿且库内无数据时，启动即导入
	if cfg.Excel.WorkbookPath != "" && srv.Snapshot().Dataset().Empty() {
		if err := importWorkbook(srv, cfg.Excel.WorkbookPath); err != nil {
			log.Printf("启动导入失败: %v", err)
		}
	}

	// 构建地址
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
}

// importWorkbook 启动期工作簿导入：解析、落库、刷新快照
func importWorkbook(srv *server.Server, path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat workbook: %w", err)
	}

	imp := importer.New()
	if err := imp.LoadFile(path); err != nil {
		return err
	}
	defer imp.Close()

	logID, err := srv.Store().CreateImportLog(imp.BatchID(), stat.Name(), stat.Size())
	if err != nil {
		return err
	}

	ds, err := imp.ParseAll()
	if err != nil {
		srv.Store().FinishImportLog(logID, 0, 0, 0, 0, "failed", err.Error())
		return err
	}
	if err := srv.Store().ReplaceDataset(ds, imp.BatchID()); err != nil {
		srv.Store().FinishImportLog(logID, 0, 0, 0, 0, "failed", err.Error())
		return err
	}

	counts := ds.Counts()
	if err := srv.Store().FinishImportLog(logID,
		counts.Sales, counts.SalesMix, counts.Recharge, counts.Arcade,
		"completed", ""); err != nil {
		return err
	}
	srv.Snapshot().Replace(ds)

	fmt.Printf("已导入工作簿 %s: 日报 %d 行, 构成 %d 行, 充值 %d 行, 街机 %d 行\n",
		stat.Name(), counts.Sales, counts.SalesMix, counts.Recharge, counts.Arcade)
	return nil
}
