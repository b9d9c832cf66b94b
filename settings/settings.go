package settings

type number interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

type (
	// Buckets is responsible for the bucket array of a table
	// Initial is a number of buckets allocated on the first insertion
	// GrowthFactor is a multiplier applied to the bucket count on each
	//         growth. Values below 2 are replaced by the default one, as
	//         otherwise the table would never grow
	Buckets struct {
		Initial      int
		GrowthFactor int
	}

	// Load is the maximal load factor, expressed as a fraction in order to
	// stay in integers. The table grows once the number of stored items
	// exceeds Numerator*buckets/Denominator
	Load struct {
		Numerator   int
		Denominator int
	}
)

type Settings struct {
	Buckets Buckets
	Load    Load
}

const (
	defaultInitialBuckets  = 1
	defaultGrowthFactor    = 2
	defaultLoadNumerator   = 3
	defaultLoadDenominator = 4
)

func Default() Settings {
	return Settings{
		Buckets: Buckets{
			Initial:      defaultInitialBuckets,
			GrowthFactor: defaultGrowthFactor,
		},
		Load: Load{
			Numerator:   defaultLoadNumerator,
			Denominator: defaultLoadDenominator,
		},
	}
}

// Fill takes some settings and fills it with default values
// everywhere where it is not filled
func Fill(original Settings) (modified Settings) {
	defaultSettings := Default()

	original.Buckets.Initial = customOrDefault(
		original.Buckets.Initial, defaultSettings.Buckets.Initial,
	)
	original.Load.Numerator = customOrDefault(
		original.Load.Numerator, defaultSettings.Load.Numerator,
	)
	original.Load.Denominator = customOrDefault(
		original.Load.Denominator, defaultSettings.Load.Denominator,
	)

	if original.Buckets.GrowthFactor < 2 {
		original.Buckets.GrowthFactor = defaultSettings.Buckets.GrowthFactor
	}

	return original
}

func customOrDefault[T number](custom, defaultVal T) T {
	if custom <= 0 {
		return defaultVal
	}

	return custom
}
