// validate_data 校验 data/ 下的关卡表、聊天脚本和花束列表
//
// 用法：
//
//	go run ./cmd/validate_data [-dir data]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbd-sarah/journey/pkg/config"
)

var dir = flag.String("dir", ".", "项目根目录（包含 data/）")

func main() {
	flag.Parse()

	failed := 0
	check := func(name string, fn func(path string) (string, error), rel string) {
		path := filepath.Join(*dir, rel)
		summary, err := fn(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", name, err)
			failed++
			return
		}
		fmt.Printf("✅ %s: %s\n", name, summary)
	}

	check("关卡表", func(path string) (string, error) {
		table, err := config.LoadLevelTable(path)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%q, %d 个可玩关卡", table.Title, len(table.Playable())), nil
	}, config.LevelTablePath)

	check("聊天脚本", func(path string) (string, error) {
		script, err := config.LoadChatScript(path)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d 个步骤, %d 个候选回复", len(script.Steps), len(script.Options)), nil
	}, config.ChatScriptPath)

	check("花束列表", func(path string) (string, error) {
		list, err := config.LoadFlowerList(path)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d 种花", len(list.Flowers)), nil
	}, config.FlowerListPath)

	if failed > 0 {
		fmt.Printf("❌ %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有数据文件校验通过\n")
}
