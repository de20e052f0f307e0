package blockviz

// MaterialKind selects the fragment shading of a material.
type MaterialKind uint32

const (
	MaterialSolid MaterialKind = iota
	MaterialStriped
)

// String returns the material kind name.
func (k MaterialKind) String() string {
	if k == MaterialStriped {
		return "striped"
	}
	return "solid"
}

// Material is a shading mode plus a base color.
type Material struct {
	Kind  MaterialKind
	Color Color
}

// SolidMaterial returns a flat material of color c.
func SolidMaterial(c Color) *Material {
	return &Material{Kind: MaterialSolid, Color: c}
}

// StripedMaterial returns an animated striped material of color c.
func StripedMaterial(c Color) *Material {
	return &Material{Kind: MaterialStriped, Color: c}
}
