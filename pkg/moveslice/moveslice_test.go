package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/franckopp/chesscore/pkg/types"
)

func TestPushPopBack(t *testing.T) {
	ms := New(4)
	m1 := NewMove(SqE2, SqE4, WPawn, PieceNone, Normal, PtNone)
	m2 := NewMove(SqD2, SqD4, WPawn, PieceNone, Normal, PtNone)
	ms.PushBack(m1)
	ms.PushBack(m2)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m2, ms.PopBack())
	assert.Equal(t, m1, ms.PopBack())
	assert.Equal(t, 0, ms.Len())
}

func TestPopBackPanicsWhenEmpty(t *testing.T) {
	ms := New(0)
	assert.Panics(t, func() { ms.PopBack() })
}

func TestPushFrontOrdering(t *testing.T) {
	ms := New(2)
	m1 := NewMove(SqE2, SqE4, WPawn, PieceNone, Normal, PtNone)
	m2 := NewMove(SqD2, SqD4, WPawn, PieceNone, Normal, PtNone)
	ms.PushBack(m1)
	ms.PushFront(m2)
	assert.Equal(t, m2, ms.At(0))
	assert.Equal(t, m1, ms.At(1))
}

func TestClear(t *testing.T) {
	ms := New(2)
	ms.PushBack(NewMove(SqE2, SqE4, WPawn, PieceNone, Normal, PtNone))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
}

func TestFilter(t *testing.T) {
	ms := New(2)
	cap1 := NewMove(SqD4, SqE5, WPawn, BPawn, Normal, PtNone)
	quiet := NewMove(SqE2, SqE4, WPawn, PieceNone, Normal, PtNone)
	ms.PushBack(cap1)
	ms.PushBack(quiet)
	captures := ms.Filter(func(m Move) bool { return m.IsCapture() })
	assert.Equal(t, 1, captures.Len())
	assert.Equal(t, cap1, captures.At(0))
}
