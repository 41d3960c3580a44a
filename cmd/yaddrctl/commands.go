package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ykit/pkg/util/yaddr"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示调用方参数错误（退出码 2）。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 报告 err 是否为 urfave/cli 框架产生的参数类错误。
func isCLIUsageError(err error) bool {
	if _, ok := err.(cli.ExitCoder); ok {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createResolveCommand(),
		createFmtCommand(),
		createCheckCommand(),
	}
}

// createResolveCommand 创建 resolve 子命令。
func createResolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Aliases:   []string{"r"},
		Usage:     "解析主机名的全部地址",
		ArgsUsage: "<host>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "first",
				Aliases: []string{"1"},
				Usage:   "只输出首个地址",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			timeout := cmd.Duration("timeout")
			first := cmd.Bool("first")
			args := cmd.Args().Slice()
			return cmdResolve(ctx, os.Stdout, timeout, first, args)
		},
	}
}

// createFmtCommand 创建 fmt 子命令。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Aliases:   []string{"f"},
		Usage:     "将整数序列格式化为规范地址字符串",
		ArgsUsage: "<octet>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdFmt(os.Stdout, cmd.Args().Slice())
		},
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "解析主机名并检查地址是否落在给定范围内",
		ArgsUsage: "<host>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "ranges",
				Aliases: []string{"r"},
				Usage:   "逗号分隔的范围列表（单 IP / CIDR / from-to）",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			timeout := cmd.Duration("timeout")
			ranges := cmd.String("ranges")
			args := cmd.Args().Slice()
			return cmdCheck(ctx, os.Stdout, timeout, ranges, args)
		},
	}
}

// cmdResolve 解析主机名并输出地址，每行一个。
func cmdResolve(ctx context.Context, w io.Writer, timeout time.Duration, first bool, args []string) error {
	if len(args) != 1 {
		return &usageError{msg: "resolve 命令需要且只需要一个主机名参数"}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addrs, err := yaddr.ResolveAll(ctx, args[0])
	if err != nil {
		return err
	}

	if first {
		addrs = addrs[:1]
	}
	for _, a := range addrs {
		fmt.Fprintln(w, a)
	}
	return nil
}

// cmdFmt 将整数参数序列格式化为规范地址字符串。
// 整数按低 8 位截断（与 [yaddr.FromInts] 一致），个数必须能构成合法地址。
func cmdFmt(w io.Writer, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "fmt 命令需要至少一个整数参数"}
	}

	octets := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("无效整数 %q", arg)}
		}
		octets = append(octets, v)
	}

	a, err := yaddr.FromOctets(octets...)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无法构成地址: %v", err)}
	}

	fmt.Fprintln(w, a)
	return nil
}

// cmdCheck 解析主机名并逐一检查地址是否命中范围。
// 设计决策: 无任何地址命中时返回非零退出码（通过 exitError），
// 使脚本能直接以退出码判断命中结果。
func cmdCheck(ctx context.Context, w io.Writer, timeout time.Duration, ranges string, args []string) error {
	if len(args) != 1 {
		return &usageError{msg: "check 命令需要且只需要一个主机名参数"}
	}
	if ranges == "" {
		return &usageError{msg: "check 命令需要 --ranges 参数"}
	}

	set, err := yaddr.ParseSet(strings.Split(ranges, ","))
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无效范围: %v", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addrs, err := yaddr.ResolveAll(ctx, args[0])
	if err != nil {
		return err
	}

	hit := false
	for _, a := range addrs {
		if a.InSet(set) {
			hit = true
			fmt.Fprintf(w, "%s: 命中\n", a)
		} else {
			fmt.Fprintf(w, "%s: 未命中\n", a)
		}
	}
	if !hit {
		return &exitError{code: 1}
	}
	return nil
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
// 当解析阻塞时，用户可通过再次 Ctrl+C 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}
