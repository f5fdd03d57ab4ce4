package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetGetClear(t *testing.T) {
	store := NewStore(time.Minute)

	_, ok := store.Get(1)
	assert.False(t, ok)

	store.Set(1, State{Step: StepWithdrawalWallet, Data: map[string]string{"amount": "15000"}})

	state, ok := store.Get(1)
	assert.True(t, ok)
	assert.Equal(t, StepWithdrawalWallet, state.Step)
	assert.Equal(t, "15000", state.Data["amount"])

	store.Clear(1)
	_, ok = store.Get(1)
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	store.Set(1, State{Step: StepDepositAmount})
	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get(1)
	assert.False(t, ok)
}

func TestStoreOverwrite(t *testing.T) {
	store := NewStore(time.Minute)

	store.Set(1, State{Step: StepWithdrawalWallet})
	store.Set(1, State{Step: StepDepositAmount})

	state, ok := store.Get(1)
	assert.True(t, ok)
	assert.Equal(t, StepDepositAmount, state.Step)
}

func TestSweep(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	store.Set(1, State{Step: StepWithdrawalWallet})
	store.Set(2, State{Step: StepDepositAmount})
	time.Sleep(20 * time.Millisecond)

	store.sweep()
	assert.Empty(t, store.entries)
}
