package feasible_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feasibrush/feasibrush/brush"
	"github.com/feasibrush/feasibrush/feasible"
	"github.com/feasibrush/feasibrush/raster"
)

func TestDesignMask_MatchesSolidPixelExisting(t *testing.T) {
	full, err := raster.FullBoolGrid(3, 3)
	require.NoError(t, err)
	br, err := brush.NewBrush(full)
	require.NoError(t, err)
	L, err := raster.FromFloat64([][]float64{
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, -1},
		{-1, -1, -1, -1, -1},
	})
	require.NoError(t, err)
	d, err := feasible.Run(L, br)
	require.NoError(t, err)
	mask, err := feasible.DesignMask(d)
	require.NoError(t, err)
	require.True(t, mask.Equal(d.SolidPixelExisting()), "DesignMask() != SolidPixelExisting()")
}

func TestDesignMask_NilDesign(t *testing.T) {
	_, err := feasible.DesignMask(nil)
	require.Error(t, err)
}

func TestGenerateFeasibleDesignMask_MatchesRunThenDesignMask(t *testing.T) {
	full, err := raster.FullBoolGrid(3, 3)
	require.NoError(t, err)
	br, err := brush.NewBrush(full)
	require.NoError(t, err)
	L, err := raster.FromFloat64([][]float64{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	mask, err := feasible.GenerateFeasibleDesignMask(L, br)
	require.NoError(t, err)
	d, err := feasible.Run(L, br)
	require.NoError(t, err)
	want, err := feasible.DesignMask(d)
	require.NoError(t, err)
	require.True(t, mask.Equal(want), "GenerateFeasibleDesignMask != Run().DesignMask()")
}

func TestSTEJacobianVectorProduct_IsIdentity(t *testing.T) {
	tangent, err := raster.FromFloat64([][]float64{
		{0.1, -0.2},
		{3.0, 0},
	})
	require.NoError(t, err)
	out, err := feasible.STEJacobianVectorProduct(tangent)
	require.NoError(t, err)

	rows, cols := tangent.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want, _ := tangent.At(i, j)
			got, _ := out.At(i, j)
			require.Equalf(t, want, got, "STEJacobianVectorProduct(%d,%d)", i, j)
		}
	}
}

func TestSTEJacobianVectorProduct_DoesNotAliasInput(t *testing.T) {
	tangent, err := raster.FromFloat64([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	out, err := feasible.STEJacobianVectorProduct(tangent)
	require.NoError(t, err)

	require.NoError(t, out.Set(0, 0, 99))
	v, _ := tangent.At(0, 0)
	require.Equal(t, float64(1), v, "result aliases its input")
}

func TestSTEJacobianVectorProduct_NilTangent(t *testing.T) {
	_, err := feasible.STEJacobianVectorProduct(nil)
	require.Error(t, err)
}
