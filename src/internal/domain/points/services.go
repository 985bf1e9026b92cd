package points

import (
	"math/rand/v2"
	"slices"
)

// ===========================
// BoxService 領域服務
// ===========================

// BoxCost 開一個箱子需要的積分
const BoxCost int64 = 10

// BoxRewards 開箱獎勵表（均勻抽取）
var BoxRewards = []int64{10, 20, 50, 100}

// RewardDrawer 從獎勵表抽取一個獎勵
//
// 抽中的值同時用於回覆訊息和實際加分，兩者永遠一致。
type RewardDrawer interface {
	Draw(rewards []int64) int64
}

// UniformDrawer 均勻隨機抽取
type UniformDrawer struct{}

// Draw 實作 RewardDrawer
func (UniformDrawer) Draw(rewards []int64) int64 {
	return rewards[rand.IntN(len(rewards))]
}

// BoxResult 開箱結果
type BoxResult struct {
	Cost         PointsAmount
	Reward       PointsAmount
	FinalBalance PointsAmount
}

// BoxService 開箱領域服務
//
// 無狀態，可在多個 goroutine 中共享；抽獎邏輯由 RewardDrawer 注入，方便測試。
type BoxService struct {
	drawer  RewardDrawer
	cost    PointsAmount
	rewards []int64
}

// NewBoxService 建構函數（drawer 為 nil 時使用 UniformDrawer）
func NewBoxService(drawer RewardDrawer) *BoxService {
	if drawer == nil {
		drawer = UniformDrawer{}
	}
	return &BoxService{
		drawer:  drawer,
		cost:    newPointsAmountUnchecked(BoxCost),
		rewards: BoxRewards,
	}
}

// Cost 開箱費用
func (s *BoxService) Cost() PointsAmount {
	return s.cost
}

// Open 對帳戶執行一次開箱
//
// 業務規則：
// - 餘額 < 10 → ErrInsufficientPoints，帳戶狀態不變
// - 先扣 10 點，再抽一次獎勵並加回
// - 最終餘額 = 原餘額 - 10 + reward
//
// 兩次餘額變更只修改聚合；持久化與原子性由調用者的事務負責。
func (s *BoxService) Open(account *PointsAccount) (*BoxResult, error) {
	if !account.CanAfford(s.cost) {
		return nil, ErrInsufficientPoints.WithContext(
			"requested", s.cost.Value(),
			"available", account.Balance().Value(),
			"reason", "open_box",
		)
	}

	value := s.drawer.Draw(s.rewards)
	if !slices.Contains(s.rewards, value) {
		return nil, ErrInvalidReward.WithContext("value", value)
	}
	reward := newPointsAmountUnchecked(value)

	if err := account.Deduct(s.cost, "open_box"); err != nil {
		return nil, err
	}
	if err := account.Credit(reward, "box_reward"); err != nil {
		return nil, err
	}
	account.recordBoxOpened(s.cost, reward)

	return &BoxResult{
		Cost:         s.cost,
		Reward:       reward,
		FinalBalance: account.Balance(),
	}, nil
}
