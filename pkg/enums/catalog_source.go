package enums

// CatalogSource tags where a movie sync resolved its data from, making the
// remote > cache > seed precedence order observable to callers and tests.
type CatalogSource string

const (
	CatalogSourceRemote CatalogSource = "remote"
	CatalogSourceCache  CatalogSource = "cache"
	CatalogSourceSeed   CatalogSource = "seed"
)

// String implements fmt.Stringer.
func (s CatalogSource) String() string {
	return string(s)
}
