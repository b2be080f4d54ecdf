package midi

// beatRange is a window of one quarter note that only moves forward in time.
type beatRange struct {
	cnt int

	lowerBound uint64
	upperBound uint64
}

func newBeatRange(ticksPerQuarterNote uint64) *beatRange {
	return &beatRange{
		lowerBound: 0,
		upperBound: ticksPerQuarterNote,
	}
}

func (m *beatRange) stepBy(n int) {
	m.cnt += n
	step := m.upperBound - m.lowerBound

	m.upperBound += step * uint64(n)
	m.lowerBound += step * uint64(n)
}

func (m *beatRange) contains(item uint64) bool {
	return item >= m.lowerBound && item < m.upperBound
}

// position is the quarter within a 4/4 bar, 0..3.
func (m *beatRange) position() int {
	return m.cnt % 4
}

// seek moves the window forward until it holds absTicks and returns its position.
func (m *beatRange) seek(absTicks uint64) int {
	step := m.upperBound - m.lowerBound
	if step == 0 {
		return 0
	}

	if m.contains(absTicks) || absTicks < m.lowerBound {
		return m.position()
	}

	m.stepBy(int((absTicks - m.lowerBound) / step))
	return m.position()
}

// quarterPosition returns the quarter within a bar that absTicks falls into.
func quarterPosition(absTicks uint64, ticksPerQuarterNote uint64) int {
	return newBeatRange(ticksPerQuarterNote).seek(absTicks)
}
