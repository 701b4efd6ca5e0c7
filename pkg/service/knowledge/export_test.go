package knowledge

var (
	Seal = seal
	Open = open
)
