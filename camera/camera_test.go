package camera

import "testing"

func TestSnapToClampsToWorld(t *testing.T) {
	cases := []struct {
		name         string
		worldW       float64
		worldH       float64
		x, y         float64
		wantX, wantY float64
	}{
		{"unbounded", 0, 0, -50, -40, -50, -40},
		{"inside", 2000, 1000, 600, 400, 600, 400},
		{"left_top_edge", 2000, 1000, 10, 10, 200, 100},
		{"right_bottom_edge", 2000, 1000, 1990, 990, 1800, 900},
		{"world_smaller_than_view", 300, 100, 0, 0, 150, 50},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := New(400, 200, 1)
			cam.SetWorldBounds(c.worldW, c.worldH)
			cam.SnapTo(c.x, c.y)
			if cam.PosX != c.wantX || cam.PosY != c.wantY {
				t.Fatalf("pos = (%v, %v), want (%v, %v)", cam.PosX, cam.PosY, c.wantX, c.wantY)
			}
		})
	}
}

func TestUpdateSmoothing(t *testing.T) {
	cam := New(400, 200, 1)
	cam.SnapTo(0, 0)
	cam.SetSmooth(0.5)
	cam.Update(100, 50)
	if cam.PosX != 50 || cam.PosY != 25 {
		t.Fatalf("pos = (%v, %v), want (50, 25)", cam.PosX, cam.PosY)
	}

	cam.SetSmooth(0)
	cam.Update(100, 50)
	if cam.PosX != 100 || cam.PosY != 50 {
		t.Fatalf("pos = (%v, %v), want (100, 50)", cam.PosX, cam.PosY)
	}
}

func TestViewAndScreenMapping(t *testing.T) {
	cam := New(400, 200, 2)
	cam.SnapTo(300, 300)

	left, top := cam.ViewTopLeft()
	if left != 200 || top != 250 {
		t.Fatalf("top-left = (%v, %v), want (200, 250)", left, top)
	}
	sx, sy := cam.ToScreen(300, 300)
	if sx != 200 || sy != 100 {
		t.Fatalf("screen = (%v, %v), want centre (200, 100)", sx, sy)
	}
}
