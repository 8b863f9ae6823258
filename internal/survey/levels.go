package survey

// Level is one step of the fixed five-point experience scale.
type Level int

const (
	LevelJunior Level = iota
	LevelMid
	LevelSenior
	LevelExpert
	LevelVeteran
)

var levelNames = [...]string{"Junior", "Mid", "Senior", "Expert", "Veteran"}

// Levels returns the scale in ascending order.
func Levels() []Level {
	return []Level{LevelJunior, LevelMid, LevelSenior, LevelExpert, LevelVeteran}
}

func (l Level) String() string {
	if l < LevelJunior || l > LevelVeteran {
		return ""
	}
	return levelNames[l]
}

// TrackPoint is one row of the market trajectory table.
type TrackPoint struct {
	Level Level
	Cloud int
	Data  int
	Web   int
}

// Salary returns the median salary of the given track at this level.
func (p TrackPoint) Salary(t Track) int {
	switch t {
	case TrackCloud:
		return p.Cloud
	case TrackData:
		return p.Data
	case TrackWeb:
		return p.Web
	default:
		return 0
	}
}

// EducationPoint is one row of the education impact table.
type EducationPoint struct {
	Level     Level
	Bachelors int
	Masters   int
}

// 2025 survey medians in USD.
var trajectory = [...]TrackPoint{
	{Level: LevelJunior, Cloud: 37581, Data: 31697, Web: 9387},
	{Level: LevelMid, Cloud: 44626, Data: 36910, Web: 30563},
	{Level: LevelSenior, Cloud: 64423, Data: 56694, Web: 51428},
	{Level: LevelExpert, Cloud: 90679, Data: 81698, Web: 78328},
	{Level: LevelVeteran, Cloud: 107951, Data: 100180, Web: 104236},
}

var education = [...]EducationPoint{
	{Level: LevelJunior, Bachelors: 33000, Masters: 49000},
	{Level: LevelMid, Bachelors: 39000, Masters: 51000},
	{Level: LevelSenior, Bachelors: 60000, Masters: 67000},
	{Level: LevelExpert, Bachelors: 86000, Masters: 85000},
	{Level: LevelVeteran, Bachelors: 115000, Masters: 105000},
}

// Trajectory returns a copy of the market-wide career trajectory table.
func Trajectory() []TrackPoint {
	out := make([]TrackPoint, len(trajectory))
	copy(out, trajectory[:])
	return out
}

// Education returns a copy of the bachelor's vs master's table.
func Education() []EducationPoint {
	out := make([]EducationPoint, len(education))
	copy(out, education[:])
	return out
}

// EducationCrossover reports the first level at which the bachelor's median
// catches up with the master's median.
func EducationCrossover() (Level, bool) {
	for _, p := range education {
		if p.Bachelors >= p.Masters {
			return p.Level, true
		}
	}
	return 0, false
}
