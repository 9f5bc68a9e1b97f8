package render

// styleSheet は、出力HTMLに埋め込むスタイルシートです。
const styleSheet = `        body {
            font-family: 'MS PGothic', 'Hiragino Kaku Gothic Pro', sans-serif;
            margin: 0;
            padding: 20px;
            background-color: #ffffee;
            line-height: 1.4;
        }
        .container {
            max-width: 1000px;
            margin: 0 auto;
            background-color: white;
            border: 1px solid #ccc;
            padding: 20px;
        }
        h1 {
            background-color: #ffe0f0;
            margin: -20px -20px 20px -20px;
            padding: 10px 20px;
            border-bottom: 1px solid #999;
            font-size: 16px;
            font-weight: bold;
        }
        .post {
            margin-bottom: 15px;
            border-bottom: 1px solid #eee;
            padding-bottom: 10px;
        }
        .post-header {
            font-size: 12px;
            color: #008800;
            margin-bottom: 5px;
        }
        .post-number {
            font-weight: bold;
            color: #000088;
        }
        .post-name {
            font-weight: bold;
            color: #008800;
        }
        .post-name.sage {
            color: #0000ff;
        }
        .post-date {
            color: #666;
        }
        .post-id {
            color: #888;
            font-size: 11px;
        }
        .post-content {
            margin-left: 20px;
            font-size: 14px;
            word-break: break-all;
            overflow-wrap: break-word;
        }
        .post-content a {
            color: #0000ff;
        }
        .thread-info {
            background-color: #f0f0f0;
            padding: 10px;
            margin-bottom: 20px;
            border: 1px solid #ccc;
            font-size: 12px;
        }
        .anchor-link {
            color: #0000ff;
            text-decoration: none;
        }
        .anchor-link:hover {
            text-decoration: underline;
        }
        .external-link {
            word-break: break-all;
            overflow-wrap: break-word;
        }
        .image-thumbnails {
            margin-top: 10px;
            padding: 5px 0;
        }
        .thumbnail {
            max-width: 150px;
            max-height: 150px;
            margin: 5px;
            border: 1px solid #ccc;
            cursor: pointer;
        }
        .thumbnail:hover {
            opacity: 0.8;
        }
        .image-thumbnails a {
            text-decoration: none;
        }
        .image-thumbnails a:hover {
            text-decoration: none;
        }
        @media (max-width: 600px) {
            .container {
                padding: 10px;
                margin: 0;
            }
            h1 {
                margin: -10px -10px 20px -10px;
                padding: 10px;
                font-size: 14px;
            }
            .post-content {
                margin-left: 10px;
            }
            .external-link {
                word-break: break-all;
                overflow-wrap: anywhere;
                line-height: 1.6;
            }
            .thumbnail {
                max-width: 100px;
                max-height: 100px;
            }
        }
`
