package catch

import "testing"

func TestSnapshotHashCoversRoundStats(t *testing.T) {
	base := newPlayingGame(t, 3)
	for range 30 {
		base.Tick(frame)
	}
	snap := base.Snapshot()
	want := snap.Hash()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"catches", func(s *Snapshot) { s.Round.Catches++ }},
		{"misses", func(s *Snapshot) { s.Round.Misses++ }},
		{"bombs caught", func(s *Snapshot) { s.Round.BombsCaught++ }},
		{"bombs dodged", func(s *Snapshot) { s.Round.BombsDodged++ }},
		{"lives gained", func(s *Snapshot) { s.Round.LivesGained++ }},
		{"elapsed", func(s *Snapshot) { s.Round.Elapsed += frame }},
		{"spawn timer", func(s *Snapshot) { s.SpawnTimer += 0.001 }},
		{"paddle", func(s *Snapshot) { s.PaddleX++ }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := snap
			tt.mutate(&changed)
			if changed.Hash() == want {
				t.Errorf("Hash() ignores %s", tt.name)
			}
		})
	}
}
