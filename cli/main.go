package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
)

type scanItem struct {
	TokenSymbol    string `json:"tokenSymbol"`
	TokenAddress   string `json:"tokenAddress"`
	SpenderName    string `json:"spenderName"`
	SpenderAddress string `json:"spenderAddress"`
	AllowanceLabel string `json:"allowanceLabel"`
	Risk           string `json:"risk"`
	Reason         string `json:"reason"`
}

type scanResp struct {
	Items []scanItem `json:"items"`
	Meta  struct {
		TokensChecked   int   `json:"tokensChecked"`
		SpendersChecked int   `json:"spendersChecked"`
		Calls           int64 `json:"calls"`
		Errors          int64 `json:"errors"`
		DurationMs      int64 `json:"durationMs"`
	} `json:"meta"`
	Error string `json:"error,omitempty"`
}

func main() {
	// 1. 定义命令行参数
	owner := flag.String("owner", "", "要扫描的钱包地址 (0x...)")
	chain := flag.String("chain", "", "目标链 (例如: Base, Ethereum)，留空用服务端默认")
	isPro := flag.Bool("pro", false, "是否使用 Pro 档 spender 列表")
	apiUrl := flag.String("url", "http://localhost:8888/api/scan", "扫描接口地址")
	flag.Parse()

	if *owner == "" {
		log.Fatal("错误: 必须用 -owner 指定钱包地址")
	}

	// 2. 准备请求数据
	requestData := map[string]interface{}{
		"owner": *owner,
		"isPro": *isPro,
	}
	if *chain != "" {
		requestData["chain"] = *chain
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		log.Fatalf("错误: 无法打包 JSON 数据: %v", err)
	}

	// 3. 创建并发送 HTTP POST 请求
	req, err := http.NewRequest("POST", *apiUrl, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Fatalf("错误: 无法创建请求: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	fmt.Printf("正向 %s 发送请求...\n", *apiUrl)
	fmt.Printf("请求体: %s\n", string(jsonData))

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("错误: 发送请求失败: %v", err)
	}
	defer resp.Body.Close()

	// 4. 读取并打印扫描结果
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("错误: 读取响应体失败: %v", err)
	}

	fmt.Println("\n--- 扫描结果 ---")
	fmt.Printf("HTTP 状态码: %d\n", resp.StatusCode)

	var result scanResp
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("响应体: %s\n", string(body))
		return
	}

	if result.Error != "" {
		fmt.Printf("扫描失败: %s\n", result.Error)
		return
	}

	for _, item := range result.Items {
		fmt.Printf("[%s] %s -> %s (%s): %s\n",
			item.Risk, item.TokenSymbol, item.SpenderName, item.SpenderAddress, item.AllowanceLabel)
		fmt.Printf("       %s\n", item.Reason)
	}
	fmt.Printf("共 %d 条风险授权 | tokens=%d spenders=%d calls=%d errors=%d 耗时=%dms\n",
		len(result.Items), result.Meta.TokensChecked, result.Meta.SpendersChecked,
		result.Meta.Calls, result.Meta.Errors, result.Meta.DurationMs)
}
