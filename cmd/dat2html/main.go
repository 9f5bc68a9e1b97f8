package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"GoDatToHTML/internal/config"
	"GoDatToHTML/internal/core"
)

// コマンドラインフラグ
var (
	configFile *string
	encoding   *string
	outputDir  *string
	verifyMode *bool
)

func init() {
	configFile = flag.String("config", "config.json", "設定ファイルのパス")
	encoding = flag.String("encoding", "", "datファイルの文字コード (既定: euc-jp)")
	outputDir = flag.String("o", "", "出力ファイル名を省略した場合の出力先ディレクトリ")
	verifyMode = flag.Bool("verify", false, "生成済みHTMLのレスアンカーを検証します")
	flag.Usage = printUsage
}

// main関数はdat2htmlのエントリーポイントです。
func main() {
	flag.Parse()
	log.SetOutput(os.Stdout)
	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	cfg, err := loadConfig()
	if err != nil {
		log.Printf("ERROR: 設定ファイルの読み込みに失敗しました: %v", err)
		return 1
	}
	logFile := setupLogger(cfg)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	if *verifyMode {
		if len(args) == 0 {
			printUsage()
			return 0
		}
		if err := core.RunVerification(args, logger); err != nil {
			logger.Printf("検証中にエラーが発生しました: %v", err)
			return 1
		}
		return 0
	}

	if len(args) < 1 {
		printUsage()
		return 0
	}
	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	stats, err := core.ConvertFile(inputPath, outputPath, cfg, logger)
	if err != nil {
		if errors.Is(err, core.ErrInputNotFound) {
			logger.Printf("エラー: ファイル '%s' が見つかりません", inputPath)
			return 0
		}
		logger.Printf("エラー: %v", err)
		logger.Println("datファイルの解析に失敗しました")
		return 1
	}
	logger.Printf("INFO: %s", stats.FormatSummary())
	return 0
}

// loadConfig は設定ファイルを読み込み、コマンドラインフラグで上書きします。
// -config が明示された場合のみ、ファイルが存在しないことをエラーとします。
func loadConfig() (*config.Config, error) {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := config.Load(*configFile, explicit)
	if err != nil {
		return nil, err
	}
	if *encoding != "" {
		cfg.InputEncoding = *encoding
	}
	if *outputDir != "" {
		cfg.OutputDirectory = *outputDir
	}
	return cfg, nil
}

// setupLogger はログ出力先を設定します。
// cfg.EnableLogFile が true の場合、標準出力とファイルの両方に出力します。
func setupLogger(cfg *config.Config) *os.File {
	if !cfg.EnableLogFile {
		return nil
	}

	path := cfg.LogFilePath
	if path == "" {
		// デフォルトは日付形式
		path = fmt.Sprintf("dat2html_%s.log", time.Now().Format("2006-01-02"))
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("WARNING: ログファイルを開けませんでした: %v", err)
		return nil
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	log.Printf("INFO: ログ出力をファイル '%s' に開始しました", path)
	return f
}

func printUsage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "使用方法: dat2html [オプション] <datファイルパス> [出力ファイル名]")
	fmt.Fprintln(out, "例: dat2html thread.dat output.html")
	fmt.Fprintln(out, "    dat2html -verify output.html")
	flag.PrintDefaults()
}
