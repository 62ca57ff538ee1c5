package game_test

import (
	"sync"
	"testing"

	"github.com/kevin-chtw/tw_mahjong/game"
	"google.golang.org/protobuf/types/known/anypb"
)

type notifierStub struct {
	mu   sync.Mutex
	msgs map[string]int
}

func newNotifierStub() *notifierStub {
	return &notifierStub{msgs: make(map[string]int)}
}

func (n *notifierStub) Push(playerID string, msg *anypb.Any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs[playerID]++
}

func (n *notifierStub) count(playerID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msgs[playerID]
}

func startRound(t *testing.T, property string) (*game.Service, *notifierStub) {
	t.Helper()
	notifier := newNotifierStub()
	svc := game.NewService(notifier, nil)
	t.Cleanup(svc.Stop)

	infos := []game.PlayerInfo{
		{ID: "p0", Score: 1000},
		{ID: "p1", Score: 1000},
		{ID: "p2", Score: 1000},
		{ID: "p3", Score: 1000},
	}
	if err := svc.StartRound("r1", infos, 1, property); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	return svc, notifier
}

func Test_ServiceRoundLifecycle(t *testing.T) {
	svc, notifier := startRound(t, "seed: 42")

	if err := svc.StartRound("r1", []game.PlayerInfo{{ID: "x"}}, 1, ""); err == nil {
		t.Error("duplicate round id accepted")
	}

	players := []string{"p0", "p1", "p2", "p3"}
	finished := false
	for i := 0; i < 1500; i++ {
		snap, err := svc.Snapshot("r1", "")
		if err != nil || snap.Over {
			finished = true
			break
		}
		switch snap.Phase {
		case "discard":
			id := players[snap.CurSeat]
			if err := svc.SubmitDiscard("r1", id, -1); err != nil {
				t.Fatalf("SubmitDiscard(%s): %v", id, err)
			}
		case "claim", "rob_kon":
			for _, id := range players {
				// 无资格座位会被拒，忽略即可
				svc.SubmitPass("r1", id)
			}
		default:
			t.Fatalf("unexpected phase %q", snap.Phase)
		}
	}
	if !finished {
		t.Fatal("round did not finish")
	}

	for _, id := range players {
		if notifier.count(id) == 0 {
			t.Errorf("player %s received no notifications", id)
		}
	}
}

func Test_ServiceSnapshotPerspective(t *testing.T) {
	svc, _ := startRound(t, "seed: 9")

	snap, err := svc.Snapshot("r1", "p1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	for _, seat := range snap.Seats {
		if seat.Seat == 1 {
			if len(seat.HandTiles) == 0 {
				t.Error("own hand should be visible")
			}
		} else if len(seat.HandTiles) != 0 {
			t.Errorf("seat %d hand leaked to p1", seat.Seat)
		}
	}

	if _, err := svc.Snapshot("r1", "ghost"); err == nil {
		t.Error("snapshot for unknown player accepted")
	}
	if _, err := svc.Snapshot("nope", "p1"); err == nil {
		t.Error("snapshot for unknown round accepted")
	}
}

func Test_ServiceRejectsStrangers(t *testing.T) {
	svc, _ := startRound(t, "seed: 5")

	if err := svc.SubmitDiscard("r1", "ghost", -1); err == nil {
		t.Error("unknown player accepted")
	}
	if err := svc.SubmitDiscard("nope", "p0", -1); err == nil {
		t.Error("unknown round accepted")
	}
	if err := svc.SubmitClaim("r1", "p0", "Moo", -1, -1, 0); err == nil {
		t.Error("unknown operate accepted")
	}
}
