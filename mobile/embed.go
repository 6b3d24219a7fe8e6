//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前把项目根目录的 data/ 复制到 mobile/data/。
//
// 手动构建：
//
//	cp -r data mobile/ && go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/levels.yaml data/chat.yaml data/flowers.yaml
var dataFS embed.FS
