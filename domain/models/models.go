package models

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrNoSeries          = errors.New("chart has no series")
	ErrBarWidth          = errors.New("bar width must be positive")
	ErrNonFiniteValue    = errors.New("non-finite value")
)

// Series одна именованная последовательность значений, по одному на категорию.
type Series struct {
	Name   string
	Values []float64
}

// DimensionMismatchError длина серии не совпадает с количеством категорий
type DimensionMismatchError struct {
	Series string
	Got    int
	Want   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: series %q has %d values, want %d", ErrDimensionMismatch, e.Series, e.Got, e.Want)
}

func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

// CheckDimensions returns a *DimensionMismatchError for the first series
// whose length differs from the category count.
func CheckDimensions(categories []string, series []Series) error {
	for _, s := range series {
		if len(s.Values) != len(categories) {
			return &DimensionMismatchError{Series: s.Name, Got: len(s.Values), Want: len(categories)}
		}
	}
	return nil
}

// NonFiniteValueError значение серии NaN или бесконечность
type NonFiniteValueError struct {
	Series string
	Index  int
	Value  float64
}

func (e *NonFiniteValueError) Error() string {
	return fmt.Sprintf("%s: series %q has %v at index %d", ErrNonFiniteValue, e.Series, e.Value, e.Index)
}

func (e *NonFiniteValueError) Unwrap() error {
	return ErrNonFiniteValue
}

// CheckSeries checks lengths first, then rejects NaN and infinite values.
func CheckSeries(categories []string, series []Series) error {
	if err := CheckDimensions(categories, series); err != nil {
		return err
	}
	for _, s := range series {
		for i, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &NonFiniteValueError{Series: s.Name, Index: i, Value: v}
			}
		}
	}
	return nil
}

type Chart struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Series     []Series
	BarWidth   float64
}

// NewChart копирует входные данные, после создания график не меняется
func NewChart(title, xLabel, yLabel string, categories []string, series []Series, barWidth float64) Chart {
	c := Chart{
		Title:      title,
		XLabel:     xLabel,
		YLabel:     yLabel,
		Categories: append([]string(nil), categories...),
		BarWidth:   barWidth,
	}
	c.Series = make([]Series, len(series))
	for i, s := range series {
		c.Series[i] = Series{Name: s.Name, Values: append([]float64(nil), s.Values...)}
	}
	return c
}

func (c Chart) Validate() error {
	if len(c.Series) == 0 {
		return ErrNoSeries
	}
	if c.BarWidth <= 0 {
		return fmt.Errorf("%w: got %v", ErrBarWidth, c.BarWidth)
	}
	return CheckSeries(c.Categories, c.Series)
}

// MaxValue наибольшее значение среди всех серий, 0 для пустого графика
func (c Chart) MaxValue() float64 {
	max := 0.0
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > max {
				max = v
			}
		}
	}
	return max
}
