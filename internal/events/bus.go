// Package events is an explicit callback registry owned by the composing
// layer. Cross-component notifications (reward grants, garden unlocks) go
// through a Bus handed to the components that publish them; there are no
// module-level subscriber lists.
package events

// RewardEvent is published when energy is credited for a rest.
type RewardEvent struct {
	Amount  int
	Partial bool
}

// UnlockEvent is published when the total rest count reaches a garden
// unlock threshold. At most one unlock fires per completion.
type UnlockEvent struct {
	Threshold  int
	TotalRests int
}

type Bus struct {
	rewardHandlers []func(RewardEvent)
	unlockHandlers []func(UnlockEvent)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) OnReward(fn func(RewardEvent)) {
	b.rewardHandlers = append(b.rewardHandlers, fn)
}

func (b *Bus) OnUnlock(fn func(UnlockEvent)) {
	b.unlockHandlers = append(b.unlockHandlers, fn)
}

func (b *Bus) PublishReward(e RewardEvent) {
	for _, fn := range b.rewardHandlers {
		fn(e)
	}
}

func (b *Bus) PublishUnlock(e UnlockEvent) {
	for _, fn := range b.unlockHandlers {
		fn(e)
	}
}
