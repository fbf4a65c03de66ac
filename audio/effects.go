package audio

// Effect identifies one of the game's synthesized sounds.
type Effect int

const (
	EffectShoot Effect = iota
	EffectEnemyHit
	EffectEnemyDown
	EffectPlayerHurt
	EffectPickup
	EffectLevelUp
	EffectGameOver

	effectCount
)

func (e Effect) String() string {
	switch e {
	case EffectShoot:
		return "Shoot"
	case EffectEnemyHit:
		return "EnemyHit"
	case EffectEnemyDown:
		return "EnemyDown"
	case EffectPlayerHurt:
		return "PlayerHurt"
	case EffectPickup:
		return "Pickup"
	case EffectLevelUp:
		return "LevelUp"
	case EffectGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// effectData maps each effect to its jsfxr parameter string.
var effectData = [effectCount]string{
	// Shoot: short square-wave zap.
	EffectShoot: "0,,.167,.1637,.1361,.7212,.0399,-.363,,,,,,.1314,.0517,,.0154,-.1633,1,,,.0515,,.2",
	// Enemy hit: filtered noise burst.
	EffectEnemyHit: "3,.1,.3899,.1901,.2847,.0399,,.0007,.1492,,,-.9636,,,-.3893,.1636,-.0047,.6646,.9653,-.1103,.5924,.484,.1547,.4",
	// Enemy destroyed: long noise sweep.
	EffectEnemyDown: "3,.2,.1899,.4799,.91,.0599,,-.2199,-.2,.5299,.5299,-.0399,.3,,.0799,.1899,-.1194,.2327,.8815,-.2364,.43,.2099,-.5799,.5",
	// Player hurt: harsh noise hit.
	EffectPlayerHurt: "3,.0704,.0462,.3388,.4099,.1599,,.0109,-.3247,.0006,,-.1592,.4477,.1028,.1787,,-.0157,-.3372,.1896,.1628,,.0016,-.0003,.5",
	// Pickup: rising square arpeggio.
	EffectPickup: "0,.43,.1099,.67,.4499,.6999,,-.2199,-.2,.5299,.5299,-.0399,.3,,.0799,.1899,-.1194,.2327,.8815,-.2364,.43,.2099,-.5799,.5",
	// Level up: sawtooth alarm.
	EffectLevelUp: "1,.1,1,.1901,.2847,.3199,,.0007,.1492,,,-.9636,,,-.3893,.1636,-.0047,.6646,.9653,-.1103,.5924,.484,.1547,.6",
	// Game over: descending sawtooth drone.
	EffectGameOver: "1,1,.09,.5,.4111,.506,.0942,.1499,.0199,.8799,.1099,-.68,.0268,.1652,.62,.6999,-.0399,.4799,.5199,-.0429,.0599,.8199,-.4199,.7",
}

// RenderEffect synthesizes one effect to mono PCM samples.
func RenderEffect(e Effect) []int16 {
	return NewSynth(ParseParams(effectData[e])).Render()
}
