package rivals

// namePool is the finite set of rival handles drawn from when
// synthesizing entries.
var namePool = []string{
	"NeonDasher",
	"PixelViper",
	"TurboKat",
	"GlitchRunner",
	"SkyBlazer",
	"RetroRocket",
	"VoltVixen",
	"ChromeFalcon",
	"DriftKing99",
	"LaserLynx",
	"NovaSprint",
	"ByteBandit",
	"GhostPacer",
	"CometCrush",
	"ZenithZoom",
	"ArcadeAce",
	"FluxHopper",
	"StellarStride",
	"GrimGlider",
	"EchoBolt",
	"RogueRacer",
	"PrismPunk",
	"OrbitOtter",
	"VaporVault",
}

// PoolSize reports how many distinct rival names are available; a
// generation batch can never contain more entries than this.
func PoolSize() int { return len(namePool) }
