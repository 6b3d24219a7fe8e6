package minigame

import (
	"log"
	"math"
	"math/rand"

	"github.com/hbd-sarah/journey/pkg/components"
	"github.com/hbd-sarah/journey/pkg/config"
	"github.com/hbd-sarah/journey/pkg/ecs"
)

// FlappyLevel 小鸭关卡编号
const FlappyLevel = 4

// 管道上半部分高度范围（百分比）
const (
	flappyMinTop = 10
	flappyMaxTop = config.FlappyFloorY - config.FlappyObstacleGap - 10
)

// FlappyObstacle 快照中的管道
type FlappyObstacle struct {
	X         float64
	TopHeight float64
	Passed    bool
}

// FlappySnapshot 每帧发布给绘制层的只读状态
type FlappySnapshot struct {
	State     State
	Countdown int // 倒计时剩余秒数，0 表示正在飞行
	Immune    bool
	BirdY     float64
	Velocity  float64
	Score     int
	Obstacles []FlappyObstacle
}

// Flappy 第 4 关：点击让小鸭飞过管道缝隙
//
// 开局 3-2-1 倒计时，然后 3 秒无敌。重试时保留分数和管道，只重置小鸭。
type Flappy struct {
	em       *ecs.EntityManager
	rng      *rand.Rand
	life     *Lifecycle
	progress *guard

	birdY      float64
	velocity   float64
	score      int
	countdown  float64 // 剩余倒计时（秒）
	immunity   float64 // 剩余无敌时间（秒）
	spawnTimer float64
}

// NewFlappy 创建小鸭关卡
//
// 参数：
//   - progress: 进度
//   - rng: 管道高度随机源，为 nil 时使用随机种子
func NewFlappy(progress Progress, rng *rand.Rand) *Flappy {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	f := &Flappy{
		em:       ecs.NewEntityManager(),
		rng:      rng,
		life:     NewLifecycle(),
		progress: newGuard(progress),
		birdY:    config.FlappyBirdStartY,
	}
	f.life.OnStart(f.startCountdown)
	f.life.OnWon(func() {
		log.Printf("[Flappy] Won")
	})
	f.life.OnLost(func() {
		log.Printf("[Flappy] Crashed with score %d", f.score)
	})
	return f
}

// startCountdown 重置小鸭并开始倒计时，分数和管道保留
func (f *Flappy) startCountdown() {
	f.birdY = config.FlappyBirdStartY
	f.velocity = 0
	f.countdown = config.FlappyCountdown
	f.immunity = 0
	f.spawnTimer = 0
}

// Tap 点击/空格：未开始或失败时开始倒计时，飞行中则向上跳
func (f *Flappy) Tap() {
	switch f.life.State() {
	case NotStarted:
		f.life.Start()
	case Lost:
		f.life.Retry()
	case Running:
		if f.countdown <= 0 {
			f.velocity = config.FlappyJumpStrength
		}
	}
}

// Update 推进一帧
func (f *Flappy) Update(dt float64) {
	if !f.life.Running() {
		return
	}

	if f.countdown > 0 {
		f.countdown -= dt
		if f.countdown <= 0 {
			f.countdown = 0
			f.immunity = config.FlappyImmunity
		}
		return
	}

	if f.immunity > 0 {
		f.immunity = math.Max(0, f.immunity-dt)
	}

	factor := math.Min(dt*config.TicksPerSecond, config.FlappyMaxDtFactor)

	f.velocity += config.FlappyGravity * factor
	f.birdY += f.velocity * factor

	if f.birdY > config.FlappyFloorY {
		if !f.Immune() {
			f.life.Lose()
			return
		}
		f.birdY = config.FlappyFloorY
		f.velocity = 0
	}
	if f.birdY < 0 {
		f.birdY = 0
		f.velocity = 0
	}

	f.spawnTimer += dt
	if f.spawnTimer >= config.FlappySpawnInterval {
		f.spawnTimer -= config.FlappySpawnInterval
		f.spawnObstacle(float64(f.rng.Intn(flappyMaxTop-flappyMinTop+1) + flappyMinTop))
	}

	step := config.FlappyObstacleSpeed * factor
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ObstacleComponent](f.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
		obs, _ := ecs.GetComponent[*components.ObstacleComponent](f.em, id)

		pos.X -= step
		right := pos.X + config.FlappyObstacleWidth
		if right < config.FlappyBirdX && right+step >= config.FlappyBirdX {
			obs.Passed = true
			f.score++
			if f.score >= config.FlappyTargetScore {
				f.life.Win()
				return
			}
		}

		if f.hits(pos.X, obs.TopHeight) && !f.Immune() {
			f.life.Lose()
			return
		}

		if pos.X <= config.FlappyObstacleDespawn {
			f.em.DestroyEntity(id)
		}
	}
	f.em.RemoveMarkedEntities()
}

// hits 小鸭（四边内缩后的判定框）是否撞上管道
func (f *Flappy) hits(obsX, topHeight float64) bool {
	birdLeft := config.FlappyBirdX + config.FlappyHitboxInset
	birdRight := config.FlappyBirdX + config.FlappyBirdSize - config.FlappyHitboxInset
	birdTop := f.birdY + config.FlappyHitboxInset
	birdBottom := f.birdY + config.FlappyBirdSize - config.FlappyHitboxInset

	if birdRight <= obsX || birdLeft >= obsX+config.FlappyObstacleWidth {
		return false
	}
	return birdTop < topHeight || birdBottom > topHeight+config.FlappyObstacleGap
}

func (f *Flappy) spawnObstacle(topHeight float64) ecs.EntityID {
	id := f.em.CreateEntity()
	f.em.AddComponent(id, &components.PositionComponent{X: 100})
	f.em.AddComponent(id, &components.ObstacleComponent{TopHeight: topHeight})
	return id
}

// Immune 是否处于开局无敌
func (f *Flappy) Immune() bool {
	return f.immunity > 0
}

// Snapshot 返回当前状态的拷贝
func (f *Flappy) Snapshot() FlappySnapshot {
	snap := FlappySnapshot{
		State:    f.life.State(),
		Immune:   f.Immune(),
		BirdY:    f.birdY,
		Velocity: f.velocity,
		Score:    f.score,
	}
	if f.countdown > 0 {
		snap.Countdown = int(math.Ceil(f.countdown))
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ObstacleComponent](f.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
		obs, _ := ecs.GetComponent[*components.ObstacleComponent](f.em, id)
		snap.Obstacles = append(snap.Obstacles, FlappyObstacle{X: pos.X, TopHeight: obs.TopHeight, Passed: obs.Passed})
	}
	return snap
}

// Continue 胜利后继续，完成关卡
func (f *Flappy) Continue() bool {
	if f.life.State() != Won || f.life.TornDown() {
		return false
	}
	f.progress.completeLevel(FlappyLevel)
	return true
}

// Teardown 停止循环并屏蔽进度修改
func (f *Flappy) Teardown() {
	f.life.Teardown()
	f.progress.disable()
	f.em.Clear()
}
