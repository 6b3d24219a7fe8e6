package game

import "fmt"

// ScreenID 当前应当显示的界面
type ScreenID int

const (
	ScreenLetter ScreenID = iota
	ScreenMap
	ScreenChat       // 第 1 关
	ScreenFlowers    // 第 2 关
	ScreenCatch      // 第 3 关
	ScreenFlappy     // 第 4 关
	ScreenPuzzle     // 第 5 关
	ScreenCake       // 第 6 关
	ScreenComingSoon // 未实现的关卡
)

var levelScreens = map[int]ScreenID{
	1: ScreenChat,
	2: ScreenFlowers,
	3: ScreenCatch,
	4: ScreenFlappy,
	5: ScreenPuzzle,
	6: ScreenCake,
}

// Route 根据进度决定界面，首个匹配的规则生效：
// 信封未打开 → 信封；CurrentLevel 为 0 → 地图；1..6 → 对应小游戏；其他 → 敬请期待。
func Route(record ProgressRecord) ScreenID {
	if !record.IsLetterOpened {
		return ScreenLetter
	}
	if record.CurrentLevel == 0 {
		return ScreenMap
	}
	if screen, ok := levelScreens[record.CurrentLevel]; ok {
		return screen
	}
	return ScreenComingSoon
}

func (s ScreenID) String() string {
	switch s {
	case ScreenLetter:
		return "letter"
	case ScreenMap:
		return "map"
	case ScreenChat:
		return "chat"
	case ScreenFlowers:
		return "flowers"
	case ScreenCatch:
		return "catch"
	case ScreenFlappy:
		return "flappy"
	case ScreenPuzzle:
		return "puzzle"
	case ScreenCake:
		return "cake"
	case ScreenComingSoon:
		return "coming-soon"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}
