// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ulq

// RaceEnabled is true when the race detector is active.
// Used by stress tests to scale down iteration counts: the queue
// operations themselves are detector-visible (sync/atomic), but the
// instrumented build runs an order of magnitude slower.
const RaceEnabled = true
