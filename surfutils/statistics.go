package surfutils

import "math"

type Statistics struct {
	LevelCount  int
	LayerCount  int
	TexelBytes  int
	PaddedBytes int
}

func (s *Statistics) Clear() {
	s.LevelCount = 0
	s.LayerCount = 0
	s.TexelBytes = 0
	s.PaddedBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.LevelCount += other.LevelCount
	s.LayerCount += other.LayerCount
	s.TexelBytes += other.TexelBytes
	s.PaddedBytes += other.PaddedBytes
}

type DetailedStatistics struct {
	Statistics
	LevelSizeMin int
	LevelSizeMax int
	PadBytesMin  int
	PadBytesMax  int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.LevelSizeMin = math.MaxInt
	s.LevelSizeMax = 0
	s.PadBytesMin = math.MaxInt
	s.PadBytesMax = 0
}

func (s *DetailedStatistics) AddLevel(size, padBytes int) {
	s.LevelCount++
	s.PaddedBytes += size
	s.TexelBytes += size - padBytes

	if size < s.LevelSizeMin {
		s.LevelSizeMin = size
	}

	if size > s.LevelSizeMax {
		s.LevelSizeMax = size
	}

	if padBytes < s.PadBytesMin {
		s.PadBytesMin = padBytes
	}

	if padBytes > s.PadBytesMax {
		s.PadBytesMax = padBytes
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)

	if other.LevelSizeMin < s.LevelSizeMin {
		s.LevelSizeMin = other.LevelSizeMin
	}

	if other.LevelSizeMax > s.LevelSizeMax {
		s.LevelSizeMax = other.LevelSizeMax
	}

	if other.PadBytesMin < s.PadBytesMin {
		s.PadBytesMin = other.PadBytesMin
	}

	if other.PadBytesMax > s.PadBytesMax {
		s.PadBytesMax = other.PadBytesMax
	}
}
