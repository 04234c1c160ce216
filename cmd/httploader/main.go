package main

import (
	"flag"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelaccount"
	"github.com/danilovkiri/dk_go_wishlist/internal/service/modelwish"
)

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func main() {
	a := flag.String("a", "http://localhost:8080", "Server address")
	n := flag.Int("n", 20, "Iterations per stage")
	flag.Parse()
	address := *a
	iterations := *n

	const signIn = "/api/auth/anonymous"
	const wishes = "/api/wishes"
	const public = "/api/public/"
	const ping = "/ping"

	owner := resty.New()
	guest := resty.New()

	// Performing ping loading
	log.Println("Performing ping loading")
	for i := 0; i < iterations; i++ {
		if _, err := owner.R().Get(address + ping); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Signing in")
	var user modelaccount.User
	if _, err := owner.R().SetResult(&user).Post(address + signIn); err != nil {
		log.Fatal(err)
	}

	// Performing createWish loading
	log.Println("Performing createWish loading")
	var ids []int64
	for i := 0; i < iterations; i++ {
		name := randStringBytes(10)
		isPublic := i%2 == 0
		price := strconv.Itoa(rand.Intn(500) + 1)
		var view modelwish.WishView
		res, err := owner.R().
			SetBody(modelwish.WishFields{Name: &name, IsPublic: &isPublic, Price: &price}).
			SetResult(&view).
			Post(address + wishes)
		if err != nil {
			log.Fatal(err)
		}
		if res.StatusCode() == 201 {
			ids = append(ids, view.ID)
		}
	}
	log.Println(ids)

	// Performing listWishes loading
	log.Println("Performing listWishes loading")
	for i := 0; i < iterations; i++ {
		res, err := owner.R().SetQueryParams(map[string]string{
			"sort":   "price",
			"order":  "desc",
			"limit":  "5",
			"offset": strconv.Itoa(i % 4 * 5),
		}).Get(address + wishes)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Iteration", i, res.StatusCode(), res.Header().Get("X-Total-Count"))
	}

	// Performing publicList loading
	log.Println("Performing publicList loading")
	for i := 0; i < iterations; i++ {
		if _, err := guest.R().Get(address + public + user.Slug); err != nil {
			log.Fatal(err)
		}
	}

	// Performing reserve loading
	log.Println("Performing reserve loading")
	for _, id := range ids {
		res, err := guest.R().Post(address + public + user.Slug + "/wishes/" + strconv.FormatInt(id, 10) + "/reservation")
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Reserve", id, res.StatusCode())
	}

	// Performing deleteWish loading
	log.Println("Performing deleteWish loading")
	for _, id := range ids {
		if _, err := owner.R().Delete(address + wishes + "/" + strconv.FormatInt(id, 10)); err != nil {
			log.Fatal(err)
		}
	}
	time.Sleep(10 * time.Second)
}
