package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/engine/projectile"
)

func TestZZProbe(t *testing.T) {
	clock := newFakeClock()
	s := projectile.NewSystem(
		projectile.WithFireInterval(200*time.Millisecond),
		projectile.WithClock(clock),
	)
	dir := common.Vec3{Z: 1}
	fmt.Println("fire0:", s.Fire(common.Vec3{}, dir))
	clock.advance(100 * time.Millisecond)
	fmt.Println("fire1:", s.Fire(common.Vec3{}, dir))
	clock.advance(200 * time.Millisecond)
	fmt.Println("fire2:", s.Fire(common.Vec3{}, dir), "count:", s.Count())
}
