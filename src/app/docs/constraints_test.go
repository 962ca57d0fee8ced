package docs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beerfactory/src/app/docs"
	"beerfactory/src/app/http/dto"
	"beerfactory/src/core/domain"
)

func TestMain(m *testing.M) {
	// Installs the beerstyle rule and its documentation sentence.
	if err := dto.RegisterValidations(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestDescriptionsForField(t *testing.T) {
	cd := docs.NewConstraintDescriptions(dto.BeerDto{})

	got, err := cd.DescriptionsForField("beerName")
	require.NoError(t, err)
	assert.Equal(t, []string{"must not be null", "size must be between 0 and 255"}, got)

	got, err = cd.DescriptionsForField("upc")
	require.NoError(t, err)
	assert.Equal(t, []string{"must not be null", "must be greater than 0"}, got)

	got, err = cd.DescriptionsForField("beerStyle")
	require.NoError(t, err)
	assert.Equal(t, []string{"must not be null", "must be a valid beer style"}, got)
}

func TestDescribe_JoinsWithPeriods(t *testing.T) {
	cd := docs.NewConstraintDescriptions(dto.BeerDto{})

	got, err := cd.Describe("beerName")
	require.NoError(t, err)
	assert.Equal(t, "must not be null. size must be between 0 and 255", got)
}

func TestDescribe_FieldWithoutConstraints(t *testing.T) {
	cd := docs.NewConstraintDescriptions(dto.BeerDto{})

	for _, path := range []string{"id", "version", "createdDate", "lastModifiedDate"} {
		got, err := cd.Describe(path)
		require.NoError(t, err)
		assert.Equal(t, "", got, "field %q should have no constraint text", path)
	}
}

func TestDescribe_UnknownFieldPath(t *testing.T) {
	cd := docs.NewConstraintDescriptions(dto.BeerDto{})

	_, err := cd.Describe("flavor")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFieldNotFound)
}

func TestDescribe_StableAcrossCalls(t *testing.T) {
	cd := docs.NewConstraintDescriptions(&dto.BeerDto{})

	first, err := cd.Describe("beerName")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := cd.Describe("beerName")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDescribe_ConcurrentUse(t *testing.T) {
	cd := docs.NewConstraintDescriptions(dto.BeerDto{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := cd.Describe("upc")
			assert.NoError(t, err)
			assert.Equal(t, "must not be null. must be greater than 0", got)
		}()
	}
	wg.Wait()
}

func TestRenderUnknownRuleIsVisible(t *testing.T) {
	type payload struct {
		Color string `json:"color" binding:"hexcolor"`
	}

	got, err := docs.NewConstraintDescriptions(payload{}).Describe("color")
	require.NoError(t, err)
	assert.Equal(t, `must satisfy "hexcolor"`, got)
}

func TestDescriptionsForNestedPaths(t *testing.T) {
	type line struct {
		Quantity int `json:"quantity" binding:"required,gte=1"`
	}
	type order struct {
		Reference string `json:"reference" binding:"required,min=4,max=12"`
		Lines     []line `json:"lines" binding:"required,dive"`
	}

	cd := docs.NewConstraintDescriptions(order{})

	got, err := cd.Describe("reference")
	require.NoError(t, err)
	assert.Equal(t, "must not be null. size must be between 4 and 12", got)

	got, err = cd.Describe("lines[].quantity")
	require.NoError(t, err)
	assert.Equal(t, "must not be null. must be greater than or equal to 1", got)
}
