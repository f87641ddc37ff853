package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/cowvec"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	src := make([]int64, 1024)
	for i := range src {
		src[i] = int64(i)
	}
	for i := 0; i < 10000; i++ {
		v := cowvec.From(src)
		it := v.IterMut()
		for it.Next() {
			if it.Elem().Get()%1024 == 1023 {
				it.Elem().Set(0)
			}
		}
		_ = v.ToOwned()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
