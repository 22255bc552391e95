package stats

// SetTypeNames maps scout set codes (pass types) to display names.
var SetTypeNames = map[string]string{
	"K1": "Fix Avant",
	"K2": "Fix Arrière",
	"K7": "Tendu",
	"KA": "Contre-attaque sans fix",
	"KB": "Réception en 2 - Fix Arrière",
	"KC": "Basket",
	"KD": "Réception en 4 - Fix Arrière",
	"KE": "Pas de premier temps",
	"KF": "Réception en 4 - 5",
	"KK": "Réception en 2 - Fix en poste",
	"KL": "Flottante",
	"KM": "Réception en 2 - Fix Avant",
	"KN": "Mauvaise réception centrée",
	"KO": "Réception en 2 - 1",
	"KP": "Réception en 4 - Fix Avant",
	"KR": "Contre-attaque avec fix",
	"KS": "Réception en 4 - Tendue",
	"KX": "Réception en 2 - Tendue",
}

// AttackTypeNames maps scout attack codes to display names.
var AttackTypeNames = map[string]string{
	"CB": "Basket Deux Doigts",
	"CD": "Basket Tête",
	"CF": "Basket Mire",
	"P2": "Attaque sur deuxième touche",
	"PK": "Attaque non classifiable",
	"PP": "Première main du passeur",
	"PR": "Retour Direct",
	"V0": "Haute en 5",
	"V3": "Haute en 3",
	"V5": "Haute en 4",
	"V6": "Haute en 2",
	"V8": "Haute en 1",
	"VP": "Pipe Haute",
	"X0": "Accélérée en 5",
	"X1": "Fix Avant",
	"X2": "Fix Arrière",
	"X3": "Croix",
	"X4": "Demi derrière",
	"X5": "Accélérée en 4",
	"X6": "Accélérée en 2",
	"X7": "Tendue",
	"X8": "Accélérée en 1",
	"X9": "4 Exterval",
	"XB": "Pipe 6-1",
	"XC": "Fix Avant C",
	"XD": "Double C",
	"XF": "Basket du Pointu",
	"XM": "Fix en poste 3",
	"XO": "Fix Arrière du Pointu",
	"XP": "Pipe",
	"XR": "Pipe 6-5",
	"XT": "4 Interval",
}

// CodeName resolves a scout code to its display name, falling back to the
// code itself for unmapped values.
func CodeName(code string, names map[string]string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}
