package songs

// FF7VictoryFanfare - Final Fantasy VII Victory Fanfare
// https://www.hooktheory.com/theorytab/view/nobuo-uematsu/final-fantasy-vii---victory-fanfare
var FF7VictoryFanfare = New(
	"ff7_victory_fanfare",
	"Final Fantasy VII Victory Fanfare",
	MinimumDurationMs, // so the end of each note can be heard
	N(C2, Quarter),
	N(C2, Quarter),
	N(C2, Quarter),
	N(C2, Quarter*3),
	N(Ab1, Quarter*3),
	N(Bb1, Quarter*3),
	N(C2, Half),
	N(Bb1, Quarter),
	N(C2, Whole*2),
)
