package components

// ItemKind 掉落物类型
type ItemKind int

const (
	// ItemPhone 手机：接到加分
	ItemPhone ItemKind = iota
	// ItemBomb 炸弹：接到扣命
	ItemBomb
	// ItemFood 食物：接到无效果
	ItemFood
)

func (k ItemKind) String() string {
	switch k {
	case ItemPhone:
		return "PHONE"
	case ItemBomb:
		return "BOMB"
	default:
		return "FOOD"
	}
}

// FallingItemComponent 第 3 关的掉落物
type FallingItemComponent struct {
	Kind     ItemKind
	Variant  int     // 食物图案编号，仅用于绘制
	Rotation float64 // 旋转角度（度），每帧 +1
}
