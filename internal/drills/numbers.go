package drills

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Sum 逐个累加并打印每一步
// 循环上界是 len(numbers)-1，下标不会越界
func Sum(out io.Writer, numbers []int) int {
	sum := 0
	for i := 0; i < len(numbers); i++ {
		sum += numbers[i]
		fmt.Fprintf(out, "Adding %d at index %d\n", numbers[i], i)
	}
	return sum
}

// SortedCopy 返回升序排序后的副本，不修改入参
func SortedCopy(numbers []int) []int {
	out := slices.Clone(numbers)
	slices.Sort(out)
	return out
}

// LargeValues 严格大于 threshold 的元素，保持原顺序
func LargeValues(data []int, threshold int) []int {
	var out []int
	for _, v := range data {
		if v > threshold {
			out = append(out, v)
		}
	}
	return out
}

func ReportLarge(out io.Writer, data []int, threshold int) {
	for _, v := range LargeValues(data, threshold) {
		fmt.Fprintf(out, "Large number found: %d\n", v)
	}
}

// FormatInts "1 2 3 " 形式，末尾保留一个空格
func FormatInts(nums []int) string {
	var b strings.Builder
	for _, n := range nums {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(' ')
	}
	return b.String()
}
