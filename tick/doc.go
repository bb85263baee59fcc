// Package tick delivers wall-clock notifications aligned to time
// boundaries.
//
// A Source sends one Event when it starts and another at every boundary
// of its unit (a minute by default). Each Event carries the sample and
// the mask of calendar fields that changed since the previous one, which
// is what clockface.Coordinator.HandleTick consumes:
//
//	src := tick.NewSource()
//	go src.Run(ctx)
//	for ev := range src.Events() {
//		coord.HandleTick(ev.Sample, ev.Changed)
//	}
package tick
