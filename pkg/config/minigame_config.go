package config

// 小游戏参数
// 坐标单位为游戏区域的百分比 (0-100)，速度单位为 百分比/帧（60 帧基准）

// 第 3 关：接手机
const (
	// CatchSpawnInterval 掉落物生成间隔（秒）
	CatchSpawnInterval = 0.8

	// CatchPlayerHitbox 玩家手部判定宽度（百分比，略小于显示宽度 15%）
	CatchPlayerHitbox = 12.0

	// CatchPlayerWidth 玩家手部显示宽度（百分比）
	CatchPlayerWidth = 15.0

	// CatchZoneTop / CatchZoneBottom 接取判定区的上下边界
	CatchZoneTop    = 80.0
	CatchZoneBottom = 95.0

	// CatchDespawnY 掉落物超出该高度后移除
	CatchDespawnY = 105.0

	// CatchSpawnY 掉落物初始高度（屏幕上方）
	CatchSpawnY = -10.0

	// CatchTargetScore 接到多少部手机获胜
	CatchTargetScore = 5

	// CatchStartLives 初始生命数（炸弹扣除）
	CatchStartLives = 4

	// CatchPhoneChance / CatchBombChance 累计概率阈值
	CatchPhoneChance = 0.35
	CatchBombChance  = 0.6
)

// 第 4 关：飞翔的小鸭
const (
	FlappyGravity         = 0.10
	FlappyJumpStrength    = -2.0
	FlappyObstacleSpeed   = 0.25
	FlappySpawnInterval   = 3.0 // 秒
	FlappyObstacleWidth   = 15.0
	FlappyObstacleGap     = 45.0
	FlappyBirdSize        = 8.0
	FlappyBirdX           = 20.0
	FlappyBirdStartY      = 50.0
	FlappyFloorY          = 90.0
	FlappyTargetScore     = 10
	FlappyCountdown       = 3   // 倒计时秒数
	FlappyImmunity        = 3.0 // 开局无敌时间（秒）
	FlappyMaxDtFactor     = 4.0
	FlappyObstacleDespawn = -20.0
	FlappyHitboxInset     = 2.0
)

// 第 5 关：拼图
const (
	// PuzzleGridSize 拼图边长（3x3）
	PuzzleGridSize = 3

	// PuzzlePieceCount 拼图块数量
	PuzzlePieceCount = PuzzleGridSize * PuzzleGridSize
)

// 第 6 关：蛋糕
const (
	// CakeCandleClicks 吹灭蜡烛所需点击次数
	CakeCandleClicks = 5

	// CakeLetterDelay 蜡烛熄灭到显示信纸的延迟（秒）
	CakeLetterDelay = 3.0

	// WishesMaxLength 愿望文本最大字符数
	WishesMaxLength = 1000

	// ShareBaseURL 分享链接前缀（不指定号码，由用户在 WhatsApp 中选择联系人）
	ShareBaseURL = "https://wa.me/"
)

// 地图
const (
	// DeveloperModeClicks 点击火箭小鸭多少次解锁全部关卡
	DeveloperModeClicks = 10

	// MapWindowOpenDelay 窗帘打开前的延迟（秒）
	MapWindowOpenDelay = 0.5

	// MapPopupDelay 欢迎弹窗延迟（秒）
	MapPopupDelay = 3.0
)

// 叙事节奏（秒）
const (
	LetterOpenDuration  = 1.5
	LetterFoldDuration  = 1.0
	LetterCloseDuration = 0.8
	LetterExitDuration  = 1.5

	FlowerProposalDelay = 0.5
	FlowerStoryDelay    = 0.5
	FlowerExitDelay     = 1.5
	FlowerDodgeRange    = 300.0 // "No" 按钮随机偏移范围（像素）
)
