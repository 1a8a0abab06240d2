package pricing

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"tradelab.com/pkg/xerr"
)

// Forward 按下标从前往后打印 price/volume 对
func Forward(w io.Writer, prices []decimal.Decimal, volumes []int) error {
	if err := samePairs(prices, volumes); err != nil {
		return err
	}
	for i := range prices {
		if _, err := fmt.Fprintf(w, "Price[%d] = %s, Volume[%d] = %d\n", i, prices[i], i, volumes[i]); err != nil {
			return err
		}
	}
	return nil
}

// Reverse 从最后一个元素往前打印
func Reverse(w io.Writer, prices []decimal.Decimal, volumes []int) error {
	if err := samePairs(prices, volumes); err != nil {
		return err
	}
	for i := len(prices) - 1; i >= 0; i-- {
		if _, err := fmt.Fprintf(w, "Price[%d] = %s, Volume[%d] = %d\n", i, prices[i], i, volumes[i]); err != nil {
			return err
		}
	}
	return nil
}

// Scale 原地把价格和量都乘以 factor
func Scale(prices []decimal.Decimal, volumes []int, factor int64) error {
	if err := samePairs(prices, volumes); err != nil {
		return err
	}
	f := decimal.NewFromInt(factor)
	for i := range prices {
		prices[i] = prices[i].Mul(f)
		volumes[i] *= int(factor)
	}
	return nil
}

// MaxIndex 最大价格的下标，并列取第一个
func MaxIndex(prices []decimal.Decimal) (int, error) {
	if len(prices) == 0 {
		return 0, xerr.New(xerr.InvalidArgument, "no prices")
	}
	idx := 0
	for i := 1; i < len(prices); i++ {
		if prices[i].GreaterThan(prices[idx]) {
			idx = i
		}
	}
	return idx, nil
}

// Window 返回 [from, to] 闭区间的子切片(共享底层数组)
func Window(prices []decimal.Decimal, from, to int) ([]decimal.Decimal, error) {
	if from < 0 || to >= len(prices) || from > to {
		return nil, xerr.Newf(xerr.InvalidArgument, "window [%d,%d] out of range for %d prices", from, to, len(prices))
	}
	return prices[from : to+1], nil
}

func samePairs(prices []decimal.Decimal, volumes []int) error {
	if len(prices) != len(volumes) {
		return xerr.Newf(xerr.InvalidArgument, "prices/volumes length mismatch: %d != %d", len(prices), len(volumes))
	}
	return nil
}

func joinDecimals(ds []decimal.Decimal) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// SamplePrices / SampleVolumes 演示用的五档数据
func SamplePrices() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.RequireFromString("100.50"),
		decimal.RequireFromString("101.25"),
		decimal.RequireFromString("102.00"),
		decimal.RequireFromString("103.75"),
		decimal.RequireFromString("104.50"),
	}
}

func SampleVolumes() []int { return []int{1000, 1500, 2000, 1750, 1200} }

// SampleBids 五档价格和量组成的买盘
func SampleBids() []Level {
	prices, volumes := SamplePrices(), SampleVolumes()
	out := make([]Level, len(prices))
	for i := range prices {
		out[i] = Level{Price: prices[i], Volume: volumes[i]}
	}
	return out
}

// Demo 依次演示遍历、倒序、原地翻倍、找最大值、区间切片
func Demo(w io.Writer) error {
	prices, volumes := SamplePrices(), SampleVolumes()

	fmt.Fprintln(w, "=== SLICE WALK DEMONSTRATIONS ===")
	fmt.Fprintf(w, "Prices: %s\nVolumes: %s\n\n", joinDecimals(prices), joinInts(volumes))

	fmt.Fprintln(w, "1. Forward traversal:")
	if err := Forward(w, prices, volumes); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n2. Reverse traversal:")
	if err := Reverse(w, prices, volumes); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n3. Bounds:")
	fmt.Fprintf(w, "Number of elements: %d\n", len(prices))

	fmt.Fprintln(w, "\n4. In-place doubling:")
	if err := Scale(prices, volumes, 2); err != nil {
		return err
	}
	fmt.Fprintf(w, "Prices: %s\nVolumes: %s\n", joinDecimals(prices), joinInts(volumes))

	fmt.Fprintln(w, "\n5. Maximum:")
	idx, err := MaxIndex(prices)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Maximum price: %s at index %d\n", prices[idx], idx)

	fmt.Fprintln(w, "\n6. Window:")
	win, err := Window(prices, 1, 3)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Window from index 1 to 3: %s\n", joinDecimals(win))
	return err
}
