package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"tlist/internal/platform/codec"
	"tlist/internal/platform/datatype"
	"tlist/internal/platform/helper"
	"tlist/internal/platform/list"
	"tlist/internal/platform/printer"
)

func main() {
	kindName := flag.String("kind", "int", "element kind: int, float32, float64, text, ref")
	level := flag.String("log-level", "", "log level, overrides "+helper.LogLevelEnv)
	n := flag.Int("n", 5, "number of elements to push")
	flag.Parse()

	if *level != "" {
		if err := helper.SetLevel(*level); err != nil {
			log.Fatal(err)
		}
	}
	kind, err := datatype.ParseKind(*kindName)
	if err != nil {
		log.Fatal(err)
	}
	if *n < 2 {
		log.Fatalf("-n must be at least 2, got %d", *n)
	}

	switch kind {
	case datatype.KindInt:
		err = run(list.NewInt(), *n, func(i int) int64 { return int64(i * 10) })
	case datatype.KindFloat32:
		err = run(list.NewFloat32(), *n, func(i int) float32 { return float32(i) + 0.25 })
	case datatype.KindFloat64:
		err = run(list.NewFloat64(), *n, func(i int) float64 { return float64(i) / 3 })
	case datatype.KindText:
		err = run(list.NewText(), *n, func(i int) string { return "item " + strconv.Itoa(i) })
	case datatype.KindReference:
		err = run(list.NewReference[string](), *n, func(i int) string { return "ref " + strconv.Itoa(i) })
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run[T any](l *list.List[T], n int, value func(i int) T) error {
	defer l.ReleaseContents()
	start := time.Now()
	helper.Log.Debugf("running %s list %s", l.Kind(), l.ID())

	for i := 0; i < n; i++ {
		v := value(i)
		if err := l.Push(&v); err != nil {
			return err
		}
	}
	show("push", l)

	inserted := value(99)
	if err := l.InsertAt(1, &inserted); err != nil {
		return err
	}
	show("insert at 1", l)

	updated := value(7)
	if err := l.Update(0, &updated); err != nil {
		return err
	}
	show("update 0", l)

	_, err := l.Index(l.Len())
	if !errors.Is(err, list.ErrIndexOutOfRange) {
		return fmt.Errorf("index past the end: expected out of range, got %v", err)
	}
	fmt.Printf("%-14s %s\n", "index past end", err.Error())

	picked, err := l.PickAt(1)
	if err != nil {
		return err
	}
	fmt.Printf("%-14s %v\n", "pick at 1", *picked)

	if err := l.RemoveAt(l.Len() - 1); err != nil {
		return err
	}
	show("remove last", l)

	if popped, ok := l.Pop(); ok {
		fmt.Printf("%-14s %v\n", "pop", *popped)
	}

	dup, err := l.Duplicate()
	if err != nil {
		return err
	}
	defer dup.ReleaseContents()
	show("duplicate", dup)

	if l.Kind().IsValueKind() {
		data, err := codec.Marshal(l)
		if err != nil {
			return err
		}
		restored, err := codec.Unmarshal[T](data)
		if err != nil {
			return err
		}
		show(fmt.Sprintf("snapshot %dB", len(data)), restored)
		restored.ReleaseContents()
	}

	it, err := list.NewIterator(l)
	if err != nil {
		return err
	}
	for it.HasNext() {
		v, _ := it.Next()
		helper.Log.Debugf("iterator position %d: %v", it.Position(), *v)
	}
	it.Free()

	visited := 0
	if err := l.ForEach(func(*T) { visited++ }); err != nil {
		return err
	}
	fmt.Printf("%-14s %d of %d\n", "for each", visited, l.Len())
	fmt.Printf("Time elapsed: %s\n", time.Since(start))
	return nil
}

func show[T any](step string, l *list.List[T]) {
	fmt.Printf("%-14s ", step)
	if err := printer.Fprint(os.Stdout, l); err != nil {
		helper.Log.Errorf("printing %s: %s", step, err.Error())
	}
}
