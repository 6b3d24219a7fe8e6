package config

// 游戏窗口与全局常量
// 所有坐标使用 800x600 的逻辑屏幕坐标，Ebitengine 负责缩放

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameTitle 窗口标题
	GameTitle = "Happy Birthday, Sarah"

	// TicksPerSecond 逻辑帧率，所有计时器按 1/TicksPerSecond 推进
	TicksPerSecond = 60
)

// 存档相关常量
const (
	// StorageAppName gdata 应用名（决定桌面端存储目录 / 浏览器 localStorage 前缀）
	StorageAppName = "hbd_sarah"

	// DefaultUserName 新存档的默认称呼
	DefaultUserName = "Sayang"
)

// 关卡编号
const (
	// MapLevel 表示地图界面（currentLevel = 0）
	MapLevel = 0

	// FirstLevel 首个默认解锁的关卡
	FirstLevel = 1

	// LastLevel 最后一个小游戏关卡
	LastLevel = 6
)

// Data 文件路径（相对于嵌入文件系统根目录）
const (
	LevelTablePath = "data/levels.yaml"
	ChatScriptPath = "data/chat.yaml"
	FlowerListPath = "data/flowers.yaml"
)
