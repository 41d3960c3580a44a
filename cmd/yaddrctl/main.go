// yaddrctl 是 yaddr 地址库的命令行工具。
//
// 用法:
//
//	yaddrctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-t, --timeout  解析超时时间 (默认: 10s)
//
// 命令:
//
//	resolve <host>           解析主机名的全部地址
//	  --first, -1            只输出首个地址
//	fmt <octet>...           将整数序列格式化为规范地址字符串
//	check <host> --ranges    解析主机名并检查地址是否落在给定范围内
//	help                     显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功（check 命令: 至少一个地址命中范围）
//	1: 操作失败或无地址命中范围（check 命令）
//	2: 参数错误（无效整数、缺少必需参数、未知命令等）
//
// 示例:
//
//	yaddrctl resolve example.com                 # 输出全部地址
//	yaddrctl resolve --first example.com         # 只输出首个地址
//	yaddrctl fmt 127 0 0 1                       # 输出 127.0.0.1
//	yaddrctl check db.internal --ranges 10.0.0.0/8,192.168.0.0/16
//	yaddrctl -t 3s resolve slow.example.com      # 自定义超时
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

// defaultTimeout 默认解析超时时间。
const defaultTimeout = 10 * time.Second

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "yaddrctl",
		Usage:   "yaddr 地址库命令行工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "解析超时时间",
				Value:   defaultTimeout,
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"YKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `yaddrctl 将 yaddr 库的地址解析、格式化与范围检查能力
暴露为命令行操作，便于脚本与运维排查使用。

主要命令:
  resolve <host>      解析主机名的全部关联地址（A/AAAA）
    --first, -1       只输出首个地址
  fmt <octet>...      整数序列（4 或 16 个）格式化为规范地址字符串
  check <host>        解析主机名并逐一检查是否命中 --ranges 范围
    --ranges, -r      逗号分隔的范围列表（单 IP / CIDR / from-to）`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 设置信号处理
	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
