package js8

/*
 * JS8 protocol constants.
 * Derived from the JS8Call physical layer (JS8.cpp/JS8.hpp/commons.h).
 */

// Frame structure shared by every submode: Costas[0] 29-data Costas[1] 29-data Costas[2].
const (
	ldpcN = 174 // codeword bits
	ldpcK = 87  // message bits
	ldpcM = 87  // parity-check rows (M == K for this code)

	nn  = 79 // total channel symbols per frame
	nd  = 58 // data symbols (2 x 29)
	ns  = 21 // sync symbols (3 x 7)
	nrows = 8 // FSK tones per symbol

	costasLen    = 7
	costasBlocks = 3

	crcPolynomial = 0xC06
	crcXORMask    = 42
	crcWidth      = 12

	asyncMin  = 1.5
	nfSrch    = 5
	nMaxCand  = 300
	nFilt     = 1400
	rxSampleRate = 12000
	ntMax     = 60

	bpMaxIterations = 30
	bpMaxRows       = 7
	bpMaxChecks     = 3

	baselineDegree = 5
	baselineNodes  = 6
	baselinePctile = 10 // percent, "10th-percentile" arm search
)

// Submode identifies one of the five JS8 operating points.
type Submode int

const (
	SubmodeNormal Submode = iota // A
	SubmodeFast                  // B
	SubmodeTurbo                 // C
	SubmodeSlow                  // E
	SubmodeUltra                 // I
)

func (m Submode) String() string {
	switch m {
	case SubmodeNormal:
		return "A"
	case SubmodeFast:
		return "B"
	case SubmodeTurbo:
		return "C"
	case SubmodeSlow:
		return "E"
	case SubmodeUltra:
		return "I"
	default:
		return "?"
	}
}

// CostasFamily selects which Costas-array triple a submode uses for sync.
type CostasFamily int

const (
	CostasOriginal CostasFamily = iota // submode A
	CostasModified                    // submodes B, C, E, I
)

// costasOriginal is three identical copies of the original WSJT-X Costas array.
var costasOriginal = [costasBlocks][costasLen]int{
	{4, 2, 5, 6, 1, 3, 0},
	{4, 2, 5, 6, 1, 3, 0},
	{4, 2, 5, 6, 1, 3, 0},
}

// costasModified is three distinct arrays used by submodes B, C, E and I.
var costasModified = [costasBlocks][costasLen]int{
	{0, 6, 2, 3, 5, 4, 1},
	{1, 5, 0, 2, 3, 6, 4},
	{2, 5, 0, 6, 4, 1, 3},
}

// Costas returns the three 7-tone synchronisation arrays for a family.
func (f CostasFamily) Costas() [costasBlocks][costasLen]int {
	if f == CostasOriginal {
		return costasOriginal
	}
	return costasModified
}

// SubmodeParams holds the immutable, per-submode timing and analysis constants (§3).
type SubmodeParams struct {
	Submode    Submode
	Tag        int // nsubmode bitmask tag: 0,1,2,4,8
	Costas     CostasFamily
	NSPS       int     // samples/symbol at 12 kHz
	NTXDUR     int     // tx duration, seconds
	NDownSPS   int     // downsampled samples/symbol
	NDD        int     // taper length
	JZ         int     // sync search half-range, quarter-symbol steps
	AStart     float64 // start delay, seconds
	BaseSub    float64 // baseline-offset constant, dB
	AZFactor   float64 // analysis half-bandwidth, multiple of baud
	Enabled    bool    // default enablement (JS8I defaults to disabled)
}

// Derived returns the values computed from a submode's base parameters (§3).
type Derived struct {
	NMax    int     // NTXDUR * 12000
	NStep   int     // NSPS / 4 (sync step = quarter symbol)
	NHSym   int     // NMax/NStep - 3
	TStep   float64 // NStep / 12000
	NFFT1   int     // 2 * NSPS
	DF      float64 // 12000 / NFFT1
	AZ      float64 // analysis half-bandwidth, Hz
	NDFFT1  int     // wideband baseband FFT size
	NDFFT2  int     // narrowband downsample FFT size
	Baud    float64 // symbol rate, Hz
}

// Derive computes §3's derived fields for a submode.
func (p SubmodeParams) Derive() Derived {
	nmax := p.NTXDUR * rxSampleRate
	nstep := p.NSPS / 4
	nfft1 := 2 * p.NSPS
	df := float64(rxSampleRate) / float64(nfft1)
	baud := float64(rxSampleRate) / float64(p.NSPS)
	ndown := p.NSPS / p.NDownSPS
	ndfft1 := p.NSPS * p.NDD
	return Derived{
		NMax:   nmax,
		NStep:  nstep,
		NHSym:  nmax/nstep - 3,
		TStep:  float64(nstep) / float64(rxSampleRate),
		NFFT1:  nfft1,
		DF:     df,
		AZ:     p.AZFactor * baud,
		NDFFT1: ndfft1,
		NDFFT2: ndfft1 / ndown,
		Baud:   baud,
	}
}

// Submodes holds the five immutable submode descriptors, indexed by Submode.
// Values are ground-truth from JS8.cpp/commons.h; ModeE carries the NTXDUR=30/
// NDD=94 values from the C++ rewrite, not the older Fortran 28/90.
var Submodes = [5]SubmodeParams{
	SubmodeNormal: {
		Submode: SubmodeNormal, Tag: 0, Costas: CostasOriginal,
		NSPS: 1920, NTXDUR: 15, NDownSPS: 32, NDD: 100, JZ: 62,
		AStart: 0.5, BaseSub: 40, AZFactor: 0.64, Enabled: true,
	},
	SubmodeFast: {
		Submode: SubmodeFast, Tag: 1, Costas: CostasModified,
		NSPS: 1200, NTXDUR: 10, NDownSPS: 20, NDD: 100, JZ: 144,
		AStart: 0.2, BaseSub: 39, AZFactor: 0.8, Enabled: true,
	},
	SubmodeTurbo: {
		Submode: SubmodeTurbo, Tag: 2, Costas: CostasModified,
		NSPS: 600, NTXDUR: 6, NDownSPS: 12, NDD: 120, JZ: 172,
		AStart: 0.1, BaseSub: 38, AZFactor: 0.6, Enabled: true,
	},
	SubmodeSlow: {
		Submode: SubmodeSlow, Tag: 4, Costas: CostasModified,
		NSPS: 3840, NTXDUR: 30, NDownSPS: 32, NDD: 94, JZ: 32,
		AStart: 0.5, BaseSub: 42, AZFactor: 0.64, Enabled: true,
	},
	SubmodeUltra: {
		Submode: SubmodeUltra, Tag: 8, Costas: CostasModified,
		NSPS: 384, NTXDUR: 4, NDownSPS: 12, NDD: 125, JZ: 250,
		AStart: 0.1, BaseSub: 36, AZFactor: 0.64, Enabled: false, // disabled by default, per JS8_ENABLE_JS8I=0
	},
}

// Alphabet is the 64-character set JS8 packs 12-character payloads from (§6).
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-+"

// alphabetIndex maps a byte to its alphabet index, or -1 if not in the alphabet.
var alphabetIndex [256]int8

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		alphabetIndex[Alphabet[i]] = int8(i)
	}
}
