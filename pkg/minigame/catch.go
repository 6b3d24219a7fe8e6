package minigame

import (
	"log"
	"math/rand"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
)

// CatchLevel 接手机关卡编号
const CatchLevel = 3

// FoodVariants 食物图案数量
const FoodVariants = 7

// SpawnSpec 一个掉落物的生成参数
type SpawnSpec struct {
	Kind     components.ItemKind
	X        float64 // 横向位置（百分比）
	Speed    float64 // 下落速度（百分比/帧）
	Variant  int
	Rotation float64
}

// Spawner 决定下一个掉落物
// 生产环境使用 RandomSpawner，测试使用 ScriptedSpawner 保证结果确定
type Spawner interface {
	Next() SpawnSpec
}

// RandomSpawner 随机生成掉落物：35% 手机，25% 炸弹，其余为食物
type RandomSpawner struct {
	rng *rand.Rand
}

// NewRandomSpawner 创建随机生成器，rng 为 nil 时使用随机种子
func NewRandomSpawner(rng *rand.Rand) *RandomSpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandomSpawner{rng: rng}
}

// Next 生成下一个掉落物
func (s *RandomSpawner) Next() SpawnSpec {
	roll := s.rng.Float64()
	spec := SpawnSpec{
		Kind:    components.ItemFood,
		Variant: s.rng.Intn(FoodVariants),
		Speed:   0.3 + s.rng.Float64()*0.3,
	}
	switch {
	case roll < config.CatchPhoneChance:
		spec.Kind = components.ItemPhone
		spec.Speed = 0.4 + s.rng.Float64()*0.2
	case roll < config.CatchBombChance:
		spec.Kind = components.ItemBomb
	}
	spec.X = s.rng.Float64()*90 + 5
	spec.Rotation = s.rng.Float64() * 360
	return spec
}

// ScriptedSpawner 按固定顺序循环返回掉落物
type ScriptedSpawner struct {
	Specs []SpawnSpec
	next  int
}

// Next 返回下一个预设的掉落物
func (s *ScriptedSpawner) Next() SpawnSpec {
	if len(s.Specs) == 0 {
		return SpawnSpec{Kind: components.ItemFood, X: 50, Speed: 0.5}
	}
	spec := s.Specs[s.next%len(s.Specs)]
	s.next++
	return spec
}

// CatchItem 快照中的掉落物
type CatchItem struct {
	Kind     components.ItemKind
	Variant  int
	X, Y     float64
	Rotation float64
}

// CatchSnapshot 每帧发布给绘制层的只读状态
type CatchSnapshot struct {
	State   State
	Score   int
	Lives   int
	PlayerX float64
	Items   []CatchItem
}

// Catch 第 3 关：接住掉下来的手机，避开炸弹
//
// 掉落物作为 ECS 实体存储（位置、速度、掉落物组件），
// 游戏循环拥有全部本地状态，绘制层只读取 Snapshot。
type Catch struct {
	em       *ecs.EntityManager
	spawner  Spawner
	life     *Lifecycle
	progress *guard

	score      int
	lives      int
	playerX    float64
	spawnTimer float64
	caught     []components.ItemKind // 本帧接住的物品，供绘制层播放音效
}

// NewCatch 创建接手机关卡
//
// 参数：
//   - progress: 进度
//   - spawner: 掉落物生成器，为 nil 时使用 RandomSpawner
func NewCatch(progress Progress, spawner Spawner) *Catch {
	if spawner == nil {
		spawner = NewRandomSpawner(nil)
	}
	c := &Catch{
		em:       ecs.NewEntityManager(),
		spawner:  spawner,
		life:     NewLifecycle(),
		progress: newGuard(progress),
		lives:    config.CatchStartLives,
		playerX:  50,
	}
	c.life.OnStart(c.resetRound)
	c.life.OnWon(func() {
		log.Printf("[Catch] Won with %d lives left", c.lives)
	})
	c.life.OnLost(func() {
		log.Printf("[Catch] Lost with score %d", c.score)
	})
	return c
}

// resetRound 每次开始或重试都清空分数、生命和掉落物
func (c *Catch) resetRound() {
	c.score = 0
	c.lives = config.CatchStartLives
	c.spawnTimer = 0
	c.em.Clear()
}

// Start 开始游戏
func (c *Catch) Start() bool {
	return c.life.Start()
}

// Retry 失败后重试
func (c *Catch) Retry() bool {
	return c.life.Retry()
}

// MovePlayer 把手移到指定横向位置（百分比，限制在 0-100）
func (c *Catch) MovePlayer(x float64) {
	if !c.life.Running() {
		return
	}
	c.playerX = clamp(x, 0, 100)
}

// Update 推进一帧
func (c *Catch) Update(dt float64) {
	c.caught = c.caught[:0]
	if !c.life.Running() {
		return
	}

	c.spawnTimer += dt
	for c.spawnTimer >= config.CatchSpawnInterval {
		c.spawnTimer -= config.CatchSpawnInterval
		c.spawn(c.spawner.Next())
	}

	frames := dt * config.TicksPerSecond
	var hits []components.ItemKind

	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.VelocityComponent, *components.FallingItemComponent](c.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](c.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](c.em, id)
		item, _ := ecs.GetComponent[*components.FallingItemComponent](c.em, id)

		newY := pos.Y + vel.VY*frames
		if c.inCatchZone(pos.X, newY) {
			hits = append(hits, item.Kind)
			c.em.DestroyEntity(id)
			continue
		}
		if newY >= config.CatchDespawnY {
			c.em.DestroyEntity(id)
			continue
		}
		pos.Y = newY
		item.Rotation += frames
	}
	c.em.RemoveMarkedEntities()

	for _, kind := range hits {
		if !c.life.Running() {
			break
		}
		c.caught = append(c.caught, kind)
		switch kind {
		case components.ItemPhone:
			c.score++
			if c.score >= config.CatchTargetScore {
				c.life.Win()
			}
		case components.ItemBomb:
			c.lives--
			if c.lives <= 0 {
				c.life.Lose()
			}
		}
	}
}

// inCatchZone 掉落物是否落入手部判定区
func (c *Catch) inCatchZone(x, y float64) bool {
	half := config.CatchPlayerHitbox / 2
	return y > config.CatchZoneTop && y < config.CatchZoneBottom &&
		x > c.playerX-half && x < c.playerX+half
}

func (c *Catch) spawn(spec SpawnSpec) {
	id := c.em.CreateEntity()
	c.em.AddComponent(id, &components.PositionComponent{X: spec.X, Y: config.CatchSpawnY})
	c.em.AddComponent(id, &components.VelocityComponent{VY: spec.Speed})
	c.em.AddComponent(id, &components.FallingItemComponent{
		Kind:     spec.Kind,
		Variant:  spec.Variant,
		Rotation: spec.Rotation,
	})
}

// Caught 本帧接住的物品（拷贝）
func (c *Catch) Caught() []components.ItemKind {
	return append([]components.ItemKind(nil), c.caught...)
}

// Snapshot 返回当前状态的拷贝
func (c *Catch) Snapshot() CatchSnapshot {
	snap := CatchSnapshot{
		State:   c.life.State(),
		Score:   c.score,
		Lives:   c.lives,
		PlayerX: c.playerX,
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.FallingItemComponent](c.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](c.em, id)
		item, _ := ecs.GetComponent[*components.FallingItemComponent](c.em, id)
		snap.Items = append(snap.Items, CatchItem{
			Kind:     item.Kind,
			Variant:  item.Variant,
			X:        pos.X,
			Y:        pos.Y,
			Rotation: item.Rotation,
		})
	}
	return snap
}

// Continue 胜利后继续，完成关卡
func (c *Catch) Continue() bool {
	if c.life.State() != Won || c.life.TornDown() {
		return false
	}
	c.progress.completeLevel(CatchLevel)
	return true
}

// Teardown 停止循环并屏蔽进度修改
func (c *Catch) Teardown() {
	c.life.Teardown()
	c.progress.disable()
	c.em.Clear()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
