// Package datastreams is a client SDK for the Data Streams price/market-data
// oracle network. It gives application code two ways to obtain signed,
// verifiable report payloads: a request/response client over HTTPS (see
// Client) and a push client over WebSocket (see Stream).
//
// Quick start, REST:
//
//	cfg, err := datastreams.NewConfig(apiKey, apiSecret, "https://api.example.com", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	client := datastreams.NewClient(cfg)
//	report, err := client.GetLatestReport(ctx, feedID)
//
// Quick start, streaming:
//
//	cfg, err := datastreams.NewConfig(apiKey, apiSecret, "", wsURL, datastreams.WithWsHA(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	stream, err := datastreams.Open(ctx, cfg, []datastreams.ID{feedID})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer stream.Close()
//	stream.Listen(ctx)
//	for {
//		report, err := stream.Read(ctx)
//		if err != nil {
//			break
//		}
//		fmt.Println(report)
//	}
package datastreams
